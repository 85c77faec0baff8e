// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ routing.

Routes:

	GET  /health             → liveness probe
	POST /sessions           → create a session
	GET  /sessions/{id}      → fetch a session
	POST /sessions/{id}/vote → cast a vote (non-realtime fallback)
	GET  /ws                 → upgrade to the real-time channel

The whole mux is wrapped in CORS middleware; facade routes additionally
get request logging.
*/
package router
