package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// isoTimestamp matches the millisecond-precision UTC form the rest of the
// stack writes for dct:created.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

// Lifecycle owns the session records in the triple store.
type Lifecycle struct {
	store Store

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewLifecycle creates a Lifecycle on top of the privileged store client.
func NewLifecycle(store Store) *Lifecycle {
	return &Lifecycle{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// The deletion is scoped by the account the given session shares, not by
// the session IRI alone: a vendor reconnecting through another identifier
// instance gets a fresh session IRI, and matching on the account is what
// keeps stale sessions from accumulating. The flip side is that at most
// one client per account can stay logged in.
const removeAllTemplate = `%s
DELETE {
  GRAPH ?g {
    ?session
      a session:Session ;
      muAccount:account ?account ;
      dct:created ?created ;
      muAccount:canActOnBehalfOf ?org ;
      mu:uuid ?id .
  }
}
WHERE {
  GRAPH ?g {
    %s
      a session:Session ;
      muAccount:account ?account .

    ?session
      muAccount:account ?account ;
      a session:Session ;
      muAccount:canActOnBehalfOf ?org ;
      dct:created ?created ;
      mu:uuid ?id .
  }
}`

// RemoveAll deletes every session record sharing an account with the
// given session. When nothing matches, the update is a no-op rather than
// an error, which is what makes logout idempotent.
func (l *Lifecycle) RemoveAll(ctx context.Context, session rdf.IRI) error {
	update := fmt.Sprintf(removeAllTemplate,
		rdf.Namespaces.SPARQLPrefixes(),
		session.SPARQL(),
	)
	return l.store.Update(ctx, update)
}

// The WHERE clause doubles as an existence guard: without some typed
// statement about the account in the store, the INSERT writes nothing.
const createTemplate = `%s
INSERT {
  GRAPH ?g {
    %s
      a session:Session ;
      mu:uuid %s ;
      dct:created %s ;
      muAccount:account %s ;
      muAccount:canActOnBehalfOf %s .
  }
}
WHERE {
  GRAPH ?g {
    %s a ?type .
  }
}`

// Create mints a fresh identifier and timestamp, writes the session
// record linking session to account and organization, and returns the
// graph fragment used to render the response. The organization link is
// persisted but not echoed back.
func (l *Lifecycle) Create(ctx context.Context, session rdf.IRI, account, organization rdf.Term) (*rdf.Graph, error) {
	ns := rdf.Namespaces
	sessionID := rdf.NewLiteral(l.newID())
	created := rdf.NewTypedLiteral(l.now().UTC().Format(isoTimestamp), ns.XSD.IRI("dateTime"))

	graph := rdf.NewGraph()
	graph.Add(session, ns.RDF.IRI("type"), ns.Session.IRI("Session"))
	graph.Add(session, ns.Mu.IRI("uuid"), sessionID)
	graph.Add(session, ns.DCT.IRI("created"), created)
	graph.Add(session, ns.MuAccount.IRI("account"), account)

	update := fmt.Sprintf(createTemplate,
		ns.SPARQLPrefixes(),
		session.SPARQL(),
		sessionID.SPARQL(),
		created.SPARQL(),
		account.SPARQL(),
		organization.SPARQL(),
		account.SPARQL(),
	)
	if err := l.store.Update(ctx, update); err != nil {
		return nil, err
	}
	return graph, nil
}
