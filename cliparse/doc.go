// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration.

Settings come from CLI flags first, then environment variables (a local
.env file is loaded if present), then defaults:

  - PORT (-p): listen port, default 3000
  - DATABASE_TYPE (-t): memory (default), sqlite, or postgres
  - DATABASE_URL (-d): required unless the store is in-memory
  - BASE_URL (-b): public base for join links, default http://localhost:PORT
  - CLEANUP_INTERVAL_MINUTES (--cleanup-interval): default 60
  - SESSION_MAX_AGE_HOURS (--session-max-age): default 24
*/
package cliparse
