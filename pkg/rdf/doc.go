// Package rdf provides the RDF term model and in-memory statement graph
// used throughout the vendor login service.
//
// Terms (IRI, Literal, BlankNode) are immutable value types that know how
// to serialize themselves into SPARQL query text following the N-Triples
// grammar. All query construction in pkg/sparql goes through Term.SPARQL,
// which is the service's only defense against query injection.
//
// Graph is a request-scoped statement set. It is not safe for concurrent
// mutation; every request builds its own graph and discards it after the
// response is written.
package rdf
