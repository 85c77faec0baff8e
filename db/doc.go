// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL-backed store.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Schema

A single table:

  - session: one row per session, the aggregate serialized as a JSON
    document in data, with created_at lifted out for age-based cleanup

The SQL is portable between PostgreSQL (lib/pq) and SQLite (modernc.org).
*/
package db
