// Package api defines the error taxonomy of the vendor login service.
//
// Every failure a client can observe is an [Error] with a stable machine
// readable type, a human readable message, and an HTTP status hint. The
// messages are part of the public contract: consumers of the service match
// on them, so they must not change between releases.
//
// The package has no dependencies beyond the standard library and performs
// no I/O. Transport code turns an [Error] into a JSON-LD error document;
// see the jsonld and transport packages.
package api
