package rdf

import "testing"

var (
	providedBy = NewIRI("http://purl.org/pav/providedBy")
	createdBy  = NewIRI("http://purl.org/pav/createdBy")
	keyPred    = NewIRI("http://mu.semte.ch/vocabularies/account/key")
)

func loginGraph() *Graph {
	g := NewGraph()
	g.Add(NewBlankNode("req"), createdBy, NewIRI("http://example.com/org/1"))
	g.Add(NewBlankNode("req"), providedBy, NewIRI("http://example.com/vendor/1"))
	g.Add(NewIRI("http://example.com/vendor/1"), keyPred, NewLiteral("abc"))
	return g
}

func TestGraphObjects(t *testing.T) {
	g := loginGraph()

	objects := g.Objects(nil, providedBy)
	if len(objects) != 1 {
		t.Fatalf("Objects() returned %d terms, want 1", len(objects))
	}
	if !objects[0].Equal(NewIRI("http://example.com/vendor/1")) {
		t.Errorf("Objects()[0] = %v, want the vendor IRI", objects[0])
	}
}

func TestGraphObjectsScopedBySubject(t *testing.T) {
	g := loginGraph()
	g.Add(NewIRI("http://example.com/vendor/2"), keyPred, NewLiteral("other"))

	key := g.FirstObject(NewIRI("http://example.com/vendor/1"), keyPred)
	if key == nil || key.TermValue() != "abc" {
		t.Errorf("FirstObject() = %v, want literal abc", key)
	}
}

func TestGraphFirstObjectReturnsFirstMatch(t *testing.T) {
	g := NewGraph()
	g.Add(NewBlankNode("req"), providedBy, NewIRI("http://example.com/vendor/1"))
	g.Add(NewBlankNode("req"), providedBy, NewIRI("http://example.com/vendor/2"))

	first := g.FirstObject(nil, providedBy)
	if !first.Equal(NewIRI("http://example.com/vendor/1")) {
		t.Errorf("FirstObject() = %v, want the first inserted vendor", first)
	}
}

func TestGraphFirstObjectNoMatch(t *testing.T) {
	g := loginGraph()
	if got := g.FirstObject(nil, NewIRI("http://example.com/unused")); got != nil {
		t.Errorf("FirstObject() = %v, want nil", got)
	}
}

func TestGraphSubjects(t *testing.T) {
	g := loginGraph()

	subjects := g.Subjects(keyPred, NewLiteral("abc"))
	if len(subjects) != 1 {
		t.Fatalf("Subjects() returned %d terms, want 1", len(subjects))
	}
	if !subjects[0].Equal(NewIRI("http://example.com/vendor/1")) {
		t.Errorf("Subjects()[0] = %v, want the vendor IRI", subjects[0])
	}
}

func TestGraphFirstSubjectNilObjectMatchesAny(t *testing.T) {
	g := loginGraph()
	if got := g.FirstSubject(keyPred, nil); !got.Equal(NewIRI("http://example.com/vendor/1")) {
		t.Errorf("FirstSubject() = %v, want the vendor IRI", got)
	}
}

func TestGraphAny(t *testing.T) {
	g := loginGraph()
	if !g.Any(createdBy) {
		t.Error("Any(createdBy) = false, want true")
	}
	if g.Any(NewIRI("http://example.com/unused")) {
		t.Error("Any(unused) = true, want false")
	}
}

func TestGraphContains(t *testing.T) {
	g := loginGraph()
	if !g.Contains(NewIRI("http://example.com/vendor/1"), keyPred, NewLiteral("abc")) {
		t.Error("Contains() = false for an inserted statement")
	}
	if g.Contains(NewIRI("http://example.com/vendor/1"), keyPred, NewLiteral("xyz")) {
		t.Error("Contains() = true for a statement never inserted")
	}
}

func TestGraphLen(t *testing.T) {
	g := loginGraph()
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
	if NewGraph().Len() != 0 {
		t.Error("empty graph Len() != 0")
	}
}
