// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - SeedData: Load the demo questions into an empty database

# CLI Flags

	-p     Server port
	-d     Database URL
	-t     Database type
	-seed  Seed demo data

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_DATA     → -seed

A .env file in the working directory is loaded first when present.
Variables that are already set are not overwritten by it.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres (sqlite defaults to trivia.db)
  - PORT or SEED_DATA cannot be parsed
*/
package cliparse
