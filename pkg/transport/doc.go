// Package transport serves the vendor login API over HTTP.
//
// The adapter owns the two routes of the service, POST /sessions and
// DELETE /sessions/current, plus a liveness endpoint. It bridges between
// the wire (JSON-LD documents, mu-semtech headers) and the session
// service: request bodies are decoded into statement graphs, responses
// and errors are rendered back as framed, compacted JSON-LD.
//
// # Middleware
//
// Cross-cutting concerns are plain http.Handler middleware, applied
// outermost-first: panic recovery, request ID assignment (X-Request-ID),
// structured logging via log/slog, and Prometheus request metrics.
//
// # Error rendering
//
// Every failure that reaches the adapter is converted into a JSON-LD
// error document with a fresh error record (uuid plus message) and
// written with the status the error carries, defaulting to 400. Clients
// never see stack traces or internal identifiers.
package transport
