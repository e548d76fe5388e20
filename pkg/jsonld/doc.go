// Package jsonld converts between JSON-LD documents and the rdf.Graph
// statement model.
//
// Decoding expands an incoming document (after enriching it with the
// default login context and types) into a flat statement set. Encoding
// reshapes a statement set into a tree matching a frame and compacts IRIs
// to prefixed names using a context. Both directions are pure
// transformations; the heavy lifting is done by piprate/json-gold, the Go
// port of the JSON-LD processor.
//
// The static context and frame documents live in contexts.go and are
// treated as configuration data: they are defined once and never mutated.
package jsonld
