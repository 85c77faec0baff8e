// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Helpers

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with the {"error": "..."}
    error body shape used across the API
  - ParseJSONBody: request body decoding
  - CORS: permissive cross-origin handling, including preflight
  - GetClientIP: X-Forwarded-For / X-Real-IP aware client address
*/
package middleware
