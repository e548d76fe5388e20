// Package sparql provides the privileged client for the federated SPARQL
// endpoint.
//
// All store access in this service runs with elevated ("sudo") privileges
// that bypass per-graph access control. This is deliberate: the graph a
// vendor's data lives in is unknown to an incoming request and has to be
// discovered by the query itself. SudoClient makes the elevation explicit
// at every call site; no per-request-authorized client exists in this
// codebase.
//
// Query text is assembled from constant templates in pkg/session with
// every substituted value rendered through rdf.Term.SPARQL, never from raw
// request strings.
package sparql
