// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 10000)
  - DatabaseURL: connection string (required)
  - DatabaseType: postgres (lib/pq), pgx, or sqlite (default: postgres)
  - CORSOrigins: allowed origins (default: *)
  - InitSchema: create tables at startup (default: true)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-cors         Comma-separated CORS origins
	-init-schema  Create tables if missing

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGINS  → -cors
	INIT_SCHEMA   → -init-schema

CLI flags take precedence over environment variables. LoadEnvFile reads
a .env file first; variables already present in the environment are
kept.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, PORT is not a
number, or DATABASE_TYPE names an unknown driver.
*/
package cliparse
