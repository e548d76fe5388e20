package rdf

import (
	"sort"
	"strings"
)

// Namespace builds IRIs under a common prefix.
type Namespace struct {
	prefix string
	base   string
}

// IRI returns the IRI for a local name inside this namespace.
func (n Namespace) IRI(localName string) IRI {
	return NewIRI(n.base + localName)
}

// Prefix returns the short prefix label of the namespace.
func (n Namespace) Prefix() string { return n.prefix }

// Base returns the base IRI of the namespace.
func (n Namespace) Base() string { return n.base }

// Vocab is the immutable namespace table of the mu-semtech stack as used
// by this service. It is built once at package init and injected into the
// components that mint IRIs or query text.
type Vocab struct {
	RDF       Namespace
	XSD       Namespace
	Mu        Namespace
	FOAF      Namespace
	MuAccount Namespace
	WotSec    Namespace
	LblodAuth Namespace
	Pav       Namespace
	Session   Namespace
	OSLC      Namespace
	DCT       Namespace

	all []Namespace
}

// Namespaces is the process-wide namespace table.
var Namespaces = newVocab()

func newVocab() *Vocab {
	v := &Vocab{
		RDF:       Namespace{"rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		XSD:       Namespace{"xsd", "http://www.w3.org/2001/XMLSchema#"},
		Mu:        Namespace{"mu", "http://mu.semte.ch/vocabularies/core/"},
		FOAF:      Namespace{"foaf", "http://xmlns.com/foaf/0.1/"},
		MuAccount: Namespace{"muAccount", "http://mu.semte.ch/vocabularies/account/"},
		WotSec:    Namespace{"wotSec", "https://www.w3.org/2019/wot/security#"},
		LblodAuth: Namespace{"lblodAuth", "http://lblod.data.gift/vocabularies/authentication/"},
		Pav:       Namespace{"pav", "http://purl.org/pav/"},
		Session:   Namespace{"session", "http://mu.semte.ch/vocabularies/session/"},
		OSLC:      Namespace{"oslc", "http://open-services.net/ns/core#"},
		DCT:       Namespace{"dct", "http://purl.org/dc/terms/"},
	}
	v.all = []Namespace{
		v.RDF, v.XSD, v.Mu, v.FOAF, v.MuAccount, v.WotSec,
		v.LblodAuth, v.Pav, v.Session, v.OSLC, v.DCT,
	}
	return v
}

// SPARQLPrefixes returns the PREFIX preamble covering every namespace in
// the table, sorted by prefix for stable query text.
func (v *Vocab) SPARQLPrefixes() string {
	sorted := make([]Namespace, len(v.all))
	copy(sorted, v.all)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].prefix < sorted[j].prefix })

	var b strings.Builder
	for _, ns := range sorted {
		b.WriteString("PREFIX ")
		b.WriteString(ns.prefix)
		b.WriteString(": <")
		b.WriteString(ns.base)
		b.WriteString(">\n")
	}
	return b.String()
}
