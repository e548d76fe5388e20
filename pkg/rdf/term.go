package rdf

import "strings"

// Term is an RDF term: an IRI, a literal, or a blank node.
type Term interface {
	// TermValue returns the lexical value of the term: the IRI string,
	// the literal's lexical form, or the blank node label.
	TermValue() string

	// SPARQL serializes the term for inclusion in SPARQL query text,
	// following the N-Triples grammar.
	SPARQL() string

	// Equal reports whether two terms are the same term.
	Equal(other Term) bool
}

// IRI names an entity or relation.
type IRI struct {
	value string
}

// NewIRI creates an IRI term from an absolute IRI string.
func NewIRI(value string) IRI {
	return IRI{value: value}
}

// TermValue returns the IRI string.
func (i IRI) TermValue() string { return i.value }

// SPARQL serializes the IRI as <iri>.
func (i IRI) SPARQL() string {
	return "<" + i.value + ">"
}

// Equal reports whether other is the same IRI.
func (i IRI) Equal(other Term) bool {
	o, ok := other.(IRI)
	return ok && o.value == i.value
}

// IsZero reports whether the IRI is the empty zero value.
func (i IRI) IsZero() bool { return i.value == "" }

// Literal is a literal value, optionally typed or language-tagged.
type Literal struct {
	value    string
	datatype IRI
	language string
}

// NewLiteral creates a plain literal.
func NewLiteral(value string) Literal {
	return Literal{value: value}
}

// NewTypedLiteral creates a literal with a datatype IRI.
func NewTypedLiteral(value string, datatype IRI) Literal {
	return Literal{value: value, datatype: datatype}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(value, language string) Literal {
	return Literal{value: value, language: language}
}

// TermValue returns the lexical form of the literal.
func (l Literal) TermValue() string { return l.value }

// Datatype returns the literal's datatype IRI. The zero IRI means the
// literal is plain (xsd:string).
func (l Literal) Datatype() IRI { return l.datatype }

// Language returns the language tag, or "" for untagged literals.
func (l Literal) Language() string { return l.language }

// SPARQL serializes the literal with its escaped lexical form and any
// datatype or language annotation.
func (l Literal) SPARQL() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(escapeLiteral(l.value))
	b.WriteByte('"')
	switch {
	case l.language != "":
		b.WriteByte('@')
		b.WriteString(l.language)
	case !l.datatype.IsZero():
		b.WriteString("^^")
		b.WriteString(l.datatype.SPARQL())
	}
	return b.String()
}

// Equal reports whether other is the same literal, including datatype
// and language tag.
func (l Literal) Equal(other Term) bool {
	o, ok := other.(Literal)
	return ok && o.value == l.value && o.datatype == l.datatype && o.language == l.language
}

// BlankNode is a locally-scoped node identifier.
type BlankNode struct {
	label string
}

// NewBlankNode creates a blank node with the given label.
func NewBlankNode(label string) BlankNode {
	return BlankNode{label: label}
}

// TermValue returns the blank node label without the "_:" prefix.
func (b BlankNode) TermValue() string { return b.label }

// SPARQL serializes the blank node as _:label.
func (b BlankNode) SPARQL() string { return "_:" + b.label }

// Equal reports whether other is a blank node with the same label.
func (b BlankNode) Equal(other Term) bool {
	o, ok := other.(BlankNode)
	return ok && o.label == b.label
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
