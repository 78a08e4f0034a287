// Package server exposes the grid search over HTTP with gin.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	GET  /api/layouts/classic   the demonstration board
//	POST /api/search            run one search, optionally returning every frame
//
// Each request searches a fresh grid built from the posted layout, so no
// state is shared between requests. The request context cancels the search
// when the client goes away. Responses are brotli-compressed for clients
// that send "Accept-Encoding: br".
package server
