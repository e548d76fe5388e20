package sparql

import (
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// ResultSet is a parsed application/sparql-results+json response.
type ResultSet struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// Bindings returns the solution rows of the result set.
func (r *ResultSet) Bindings() []Binding {
	return r.Results.Bindings
}

// Empty reports whether the result set holds no solutions.
func (r *ResultSet) Empty() bool {
	return len(r.Results.Bindings) == 0
}

// Binding is one solution row, mapping variable names to bound values.
type Binding map[string]BindingValue

// Term returns the bound value of a variable as an rdf.Term, or nil when
// the variable is unbound in this row.
func (b Binding) Term(name string) rdf.Term {
	v, ok := b[name]
	if !ok {
		return nil
	}
	return v.Term()
}

// BindingValue is the wire form of one bound value.
type BindingValue struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Term converts the wire value into an rdf.Term. Virtuoso emits
// "typed-literal" for literals with a datatype, the SPARQL 1.1 results
// spec uses "literal" with an optional datatype field; both are handled.
func (v BindingValue) Term() rdf.Term {
	switch v.Type {
	case "uri":
		return rdf.NewIRI(v.Value)
	case "bnode":
		return rdf.NewBlankNode(v.Value)
	case "literal", "typed-literal":
		if v.Lang != "" {
			return rdf.NewLangLiteral(v.Value, v.Lang)
		}
		if v.Datatype != "" {
			return rdf.NewTypedLiteral(v.Value, rdf.NewIRI(v.Datatype))
		}
		return rdf.NewLiteral(v.Value)
	default:
		return nil
	}
}
