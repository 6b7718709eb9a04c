// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quiz responses API server.

The server lists quizzes and their true/false questions, and records
participant answers. A submission is stored as one row per answer, all
inside one transaction.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 10000 -d "postgres://..."

A .env file in the working directory is read first if it exists.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 10000)
  - DATABASE_TYPE (-t): postgres, pgx, or sqlite (default: postgres)
  - CORS_ORIGINS (-cors): allowed origins (default: *)
  - INIT_SCHEMA (-init-schema): create missing tables (default: true)

# Architecture

  - handlers: HTTP request handlers (quizzes, responses)
  - router: chi routes and shared middleware
  - middleware: request logging, JSON helpers
  - models: Request/response types
  - normalize: cleanup of composite-encoded column values
  - submission: submission parsing and the transactional writer
  - store: row fetching for quizzes and questions
  - db: driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
