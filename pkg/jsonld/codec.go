package jsonld

import (
	"fmt"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// Codec converts JSON-LD documents to and from rdf.Graph statement sets.
// A Codec is stateless and safe for concurrent use.
type Codec struct {
	proc *ld.JsonLdProcessor
}

// NewCodec creates a Codec.
func NewCodec() *Codec {
	return &Codec{proc: ld.NewJsonLdProcessor()}
}

// Decode expands a JSON-LD document into a flat statement graph. Documents
// without a context or type are enriched with the default login request
// context and types first, matching what a minimal client sends.
func (c *Codec) Decode(document map[string]any) (*rdf.Graph, error) {
	if document == nil {
		return nil, api.NewMalformedPayloadError("The request body could not be read as a JSON-LD document")
	}
	enrichLoginDocument(document)

	raw, err := c.proc.ToRDF(document, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, api.NewMalformedPayloadError(fmt.Sprintf("The request body could not be expanded into RDF: %s", err))
	}
	dataset, ok := raw.(*ld.RDFDataset)
	if !ok {
		return nil, api.NewMalformedPayloadError("The request body could not be expanded into RDF")
	}

	graph := rdf.NewGraph()
	for _, quads := range dataset.Graphs {
		for _, q := range quads {
			subject := nodeToTerm(q.Subject)
			object := nodeToTerm(q.Object)
			predicate, ok := q.Predicate.(*ld.IRI)
			if subject == nil || object == nil || !ok {
				continue
			}
			graph.Add(subject, rdf.NewIRI(predicate.Value), object)
		}
	}
	return graph, nil
}

// Encode reshapes a statement graph into a tree matching frame and
// compacts it with context. The result is deterministic for a given
// statement set regardless of insertion order.
func (c *Codec) Encode(graph *rdf.Graph, context, frame map[string]any) (map[string]any, error) {
	opts := ld.NewJsonLdOptions("")

	expanded, err := c.proc.FromRDF(graphToNQuads(graph), opts)
	if err != nil {
		return nil, fmt.Errorf("converting graph to JSON-LD: %w", err)
	}
	framed, err := c.proc.Frame(expanded, frame, opts)
	if err != nil {
		return nil, fmt.Errorf("framing JSON-LD document: %w", err)
	}
	compacted, err := c.proc.Compact(framed, context, opts)
	if err != nil {
		return nil, fmt.Errorf("compacting JSON-LD document: %w", err)
	}
	return compacted, nil
}

// enrichLoginDocument fills in the default context and types for bodies
// that omit them, so that minimal payloads still expand to the expected
// statements.
func enrichLoginDocument(document map[string]any) {
	if _, ok := document["@context"]; !ok {
		document["@context"] = LoginRequestContext
	}
	if _, ok := document["@type"]; !ok {
		document["@type"] = LoginRequestTypes
	}
}

// nodeToTerm converts a json-gold node into an rdf.Term.
func nodeToTerm(node ld.Node) rdf.Term {
	switch n := node.(type) {
	case *ld.IRI:
		return rdf.NewIRI(n.Value)
	case *ld.BlankNode:
		return rdf.NewBlankNode(strings.TrimPrefix(n.Attribute, "_:"))
	case *ld.Literal:
		if n.Language != "" {
			return rdf.NewLangLiteral(n.Value, n.Language)
		}
		if n.Datatype != "" && n.Datatype != ld.XSDString {
			return rdf.NewTypedLiteral(n.Value, rdf.NewIRI(n.Datatype))
		}
		return rdf.NewLiteral(n.Value)
	default:
		return nil
	}
}

// graphToNQuads serializes a graph in N-Quads form, the interchange format
// json-gold accepts for FromRDF. Term.SPARQL follows the N-Triples grammar
// so terms serialize identically in both settings.
func graphToNQuads(graph *rdf.Graph) string {
	var b strings.Builder
	for _, q := range graph.Quads() {
		b.WriteString(q.Subject.SPARQL())
		b.WriteByte(' ')
		b.WriteString(q.Predicate.SPARQL())
		b.WriteByte(' ')
		b.WriteString(q.Object.SPARQL())
		b.WriteString(" .\n")
	}
	return b.String()
}
