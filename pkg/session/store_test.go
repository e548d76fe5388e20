package session

import (
	"context"

	"github.com/lblod/vendor-login-service/pkg/sparql"
)

// fakeStore is a configurable in-memory Store for testing. It records
// every operation in arrival order.
type fakeStore struct {
	ops     []string // "query" / "update"
	queries []string
	updates []string

	queryResult *sparql.ResultSet
	queryErr    error

	// updateErrs is consumed one entry per Update call; nil entries and
	// calls past the end of the slice succeed.
	updateErrs []error
}

func (f *fakeStore) Query(_ context.Context, query string) (*sparql.ResultSet, error) {
	f.ops = append(f.ops, "query")
	f.queries = append(f.queries, query)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.queryResult != nil {
		return f.queryResult, nil
	}
	return emptyResults(), nil
}

func (f *fakeStore) Update(_ context.Context, update string) error {
	f.ops = append(f.ops, "update")
	f.updates = append(f.updates, update)
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		return err
	}
	return nil
}

func emptyResults() *sparql.ResultSet {
	var rs sparql.ResultSet
	rs.Head.Vars = []string{"organizationID"}
	rs.Results.Bindings = []sparql.Binding{}
	return &rs
}

func resultsWithOrganizationIDs(ids ...string) *sparql.ResultSet {
	rs := emptyResults()
	for _, id := range ids {
		rs.Results.Bindings = append(rs.Results.Bindings, sparql.Binding{
			"organizationID": sparql.BindingValue{Type: "literal", Value: id},
		})
	}
	return rs
}
