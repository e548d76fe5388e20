package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/rdf"
	"github.com/lblod/vendor-login-service/pkg/sparql"
)

// Store is the slice of the privileged SPARQL client the session layer
// depends on. *sparql.SudoClient satisfies it.
type Store interface {
	Query(ctx context.Context, query string) (*sparql.ResultSet, error)
	Update(ctx context.Context, update string) error
}

// Verifier checks vendor credentials against the triple store.
type Verifier struct {
	store  Store
	logger *slog.Logger
}

// NewVerifier creates a Verifier on top of the privileged store client.
func NewVerifier(store Store, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{store: store, logger: logger}
}

// The graph is deliberately absent from this query: vendor data is
// written per organization graph, and only a sudo query can find it.
const verifyQueryTemplate = `%s
SELECT DISTINCT ?organizationID WHERE {
  %s
    a foaf:Agent ;
    muAccount:key %s ;
    muAccount:canActOnBehalfOf %s .
  %s
    mu:uuid ?organizationID .
}`

// Verify confirms that publisher holds key as its credential and is
// authorized to act on behalf of organization, and resolves the
// organization's public identifier. Zero matching rows means the
// credentials are wrong; which of the three parts failed is never
// distinguished. When several rows match, the first one wins.
func (v *Verifier) Verify(ctx context.Context, publisher, key, organization rdf.Term) (rdf.Term, error) {
	query := fmt.Sprintf(verifyQueryTemplate,
		rdf.Namespaces.SPARQLPrefixes(),
		publisher.SPARQL(),
		key.SPARQL(),
		organization.SPARQL(),
		organization.SPARQL(),
	)

	results, err := v.store.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if results.Empty() {
		return nil, api.NewAuthenticationFailedError()
	}

	organizationID := results.Bindings()[0].Term("organizationID")
	if organizationID == nil {
		return nil, api.NewAuthenticationFailedError()
	}

	v.logger.LogAttrs(ctx, slog.LevelDebug, "vendor credentials verified",
		slog.String("publisher", publisher.TermValue()),
		slog.String("organization_id", organizationID.TermValue()),
	)
	return organizationID, nil
}
