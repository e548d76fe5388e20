package rdf

// Quad is one statement: subject, predicate, object. The graph component
// is never set by this service; every record's graph is discovered by the
// store at query time.
type Quad struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Graph is an in-memory statement set with insertion order preserved.
// Order carries no semantic meaning.
type Graph struct {
	quads []Quad
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a statement to the graph.
func (g *Graph) Add(subject Term, predicate IRI, object Term) {
	g.quads = append(g.quads, Quad{Subject: subject, Predicate: predicate, Object: object})
}

// Quads returns all statements in insertion order. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) Quads() []Quad {
	return g.quads
}

// Len returns the number of statements.
func (g *Graph) Len() int {
	return len(g.quads)
}

// Objects returns the objects of all statements with the given predicate.
// A nil subject matches any subject.
func (g *Graph) Objects(subject Term, predicate IRI) []Term {
	var out []Term
	for _, q := range g.quads {
		if !q.Predicate.Equal(predicate) {
			continue
		}
		if subject != nil && !q.Subject.Equal(subject) {
			continue
		}
		out = append(out, q.Object)
	}
	return out
}

// FirstObject returns the first object of a statement matching subject and
// predicate, or nil when none matches. A nil subject matches any subject.
func (g *Graph) FirstObject(subject Term, predicate IRI) Term {
	for _, q := range g.quads {
		if !q.Predicate.Equal(predicate) {
			continue
		}
		if subject != nil && !q.Subject.Equal(subject) {
			continue
		}
		return q.Object
	}
	return nil
}

// Subjects returns the subjects of all statements with the given predicate
// and object. A nil object matches any object.
func (g *Graph) Subjects(predicate IRI, object Term) []Term {
	var out []Term
	for _, q := range g.quads {
		if !q.Predicate.Equal(predicate) {
			continue
		}
		if object != nil && !q.Object.Equal(object) {
			continue
		}
		out = append(out, q.Subject)
	}
	return out
}

// FirstSubject returns the first subject of a statement matching predicate
// and object, or nil when none matches.
func (g *Graph) FirstSubject(predicate IRI, object Term) Term {
	for _, q := range g.quads {
		if q.Predicate.Equal(predicate) && (object == nil || q.Object.Equal(object)) {
			return q.Subject
		}
	}
	return nil
}

// Any reports whether at least one statement uses the given predicate.
func (g *Graph) Any(predicate IRI) bool {
	for _, q := range g.quads {
		if q.Predicate.Equal(predicate) {
			return true
		}
	}
	return false
}

// Contains reports whether the graph holds the exact statement.
func (g *Graph) Contains(subject Term, predicate IRI, object Term) bool {
	for _, q := range g.quads {
		if q.Subject.Equal(subject) && q.Predicate.Equal(predicate) && q.Object.Equal(object) {
			return true
		}
	}
	return false
}
