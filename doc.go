// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the trivia API server.

The trivia API stores questions, answers, categories and difficulty, and
serves paginated listing, search, category filtering, creation, deletion,
and a "next unseen question" endpoint for quiz play.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run . -seed

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - SEED_DATA (-seed): Load demo questions into an empty database

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers, pagination, quiz selection
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema, seed data, and the question store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
