// Package handler implements HTTP request handlers for the rrgraph API.
//
// # Handlers
//
// GraphHandler builds, imports, lists, exports and deletes stored routing
// resource graphs. Middleware provides panic recovery, CORS support and request
// logging.
//
// # Response Format
//
// Success responses return JSON data with appropriate status codes (200, 201).
// Error responses return JSON with {error, details} structure. Exports return
// the encoded graph with a format-specific content type.
//
// # Server-Sent Events
//
// The /events endpoint streams graph_built, graph_imported and graph_deleted
// events so clients can refresh their graph lists.
package handler
