package sparql

import (
	"encoding/json"
	"testing"

	"github.com/lblod/vendor-login-service/pkg/rdf"
)

func TestBindingValueTerm(t *testing.T) {
	tests := []struct {
		name  string
		value BindingValue
		want  rdf.Term
	}{
		{
			name:  "uri",
			value: BindingValue{Type: "uri", Value: "http://example.com/org/1"},
			want:  rdf.NewIRI("http://example.com/org/1"),
		},
		{
			name:  "plain literal",
			value: BindingValue{Type: "literal", Value: "abc"},
			want:  rdf.NewLiteral("abc"),
		},
		{
			name:  "literal with datatype",
			value: BindingValue{Type: "literal", Value: "2024-01-01T00:00:00.000Z", Datatype: "http://www.w3.org/2001/XMLSchema#dateTime"},
			want:  rdf.NewTypedLiteral("2024-01-01T00:00:00.000Z", rdf.NewIRI("http://www.w3.org/2001/XMLSchema#dateTime")),
		},
		{
			name:  "virtuoso typed-literal",
			value: BindingValue{Type: "typed-literal", Value: "42", Datatype: "http://www.w3.org/2001/XMLSchema#integer"},
			want:  rdf.NewTypedLiteral("42", rdf.NewIRI("http://www.w3.org/2001/XMLSchema#integer")),
		},
		{
			name:  "language tagged literal",
			value: BindingValue{Type: "literal", Value: "bestuur", Lang: "nl"},
			want:  rdf.NewLangLiteral("bestuur", "nl"),
		},
		{
			name:  "bnode",
			value: BindingValue{Type: "bnode", Value: "b0"},
			want:  rdf.NewBlankNode("b0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Term()
			if got == nil || !got.Equal(tt.want) {
				t.Errorf("Term() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBindingValueTermUnknownType(t *testing.T) {
	v := BindingValue{Type: "triple", Value: "x"}
	if got := v.Term(); got != nil {
		t.Errorf("Term() = %v, want nil", got)
	}
}

func TestResultSetParsing(t *testing.T) {
	raw := `{
		"head": {"vars": ["organizationID", "label"]},
		"results": {"bindings": [
			{
				"organizationID": {"type": "literal", "value": "org-uuid-1"},
				"label": {"type": "literal", "value": "Gent", "xml:lang": "nl"}
			},
			{}
		]}
	}`

	var rs ResultSet
	if err := json.Unmarshal([]byte(raw), &rs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(rs.Head.Vars) != 2 {
		t.Errorf("head vars = %v, want 2 entries", rs.Head.Vars)
	}
	if rs.Empty() {
		t.Fatal("Empty() = true for a result set with bindings")
	}
	if len(rs.Bindings()) != 2 {
		t.Fatalf("Bindings() has %d rows, want 2", len(rs.Bindings()))
	}

	first := rs.Bindings()[0]
	if got := first.Term("organizationID"); got == nil || got.TermValue() != "org-uuid-1" {
		t.Errorf("organizationID = %v, want org-uuid-1", got)
	}
	if got := first.Term("label"); got == nil || !got.Equal(rdf.NewLangLiteral("Gent", "nl")) {
		t.Errorf("label = %v, want a language-tagged literal", got)
	}

	// Second row binds nothing.
	if got := rs.Bindings()[1].Term("organizationID"); got != nil {
		t.Errorf("unbound variable Term() = %v, want nil", got)
	}
}
