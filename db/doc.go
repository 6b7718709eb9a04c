// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Drivers

Three database/sql drivers are registered:

  - postgres: github.com/lib/pq (default)
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite (local development and tests)

	conn, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL)

All queries use $n placeholders, which every driver accepts.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, driver); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - quiz: id, quiz (display name; may be stored in composite text form)
  - questions: id, quiz_id, question, answer (nullable boolean)
  - responses: id, participant_id, quiz_id, question_id, submitted_answer

# Relationships

	quiz 1──* questions
	quiz 1──* responses
	questions 1──* responses

Responses are only ever inserted; nothing updates or deletes them.
*/
package db
