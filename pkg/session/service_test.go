package session

import (
	"context"
	"reflect"
	"testing"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

func loginRequestGraph() *rdf.Graph {
	ns := rdf.Namespaces
	g := validLoginGraph()
	g.Add(testSession, ns.RDF.IRI("type"), ns.Session.IRI("Session"))
	return g
}

func TestLoginRunsVerifyDeleteCreateInOrder(t *testing.T) {
	store := &fakeStore{queryResult: resultsWithOrganizationIDs("org-uuid-1")}
	service := NewService(store, nil)

	loginDetails, err := service.Login(context.Background(), loginRequestGraph())
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	if want := []string{"query", "update", "update"}; !reflect.DeepEqual(store.ops, want) {
		t.Errorf("store operations = %v, want %v", store.ops, want)
	}

	ns := rdf.Namespaces
	if loginDetails.FirstObject(testSession, ns.Mu.IRI("uuid")) == nil {
		t.Error("login details are missing the uuid statement")
	}
	if !loginDetails.Contains(testSession, ns.MuAccount.IRI("account"), testPublisher) {
		t.Error("login details are missing the account statement")
	}
}

func TestLoginAuthenticationFailureWritesNothing(t *testing.T) {
	store := &fakeStore{} // query returns zero rows
	service := NewService(store, nil)

	_, err := service.Login(context.Background(), loginRequestGraph())
	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeAuthenticationFailed {
		t.Fatalf("Login() error = %v, want authentication_failed", err)
	}

	if want := []string{"query"}; !reflect.DeepEqual(store.ops, want) {
		t.Errorf("store operations = %v, want %v (no writes on auth failure)", store.ops, want)
	}
}

func TestLoginStopsWhenDeletionFails(t *testing.T) {
	store := &fakeStore{
		queryResult: resultsWithOrganizationIDs("org-uuid-1"),
		updateErrs:  []error{api.NewStoreUnavailableError("down")},
	}
	service := NewService(store, nil)

	_, err := service.Login(context.Background(), loginRequestGraph())
	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Login() error = %v, want store_unavailable", err)
	}

	if want := []string{"query", "update"}; !reflect.DeepEqual(store.ops, want) {
		t.Errorf("store operations = %v, want %v (create must not run)", store.ops, want)
	}
}

func TestLoginWithoutSessionStatement(t *testing.T) {
	store := &fakeStore{queryResult: resultsWithOrganizationIDs("org-uuid-1")}
	service := NewService(store, nil)

	_, err := service.Login(context.Background(), validLoginGraph())
	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeMissingHeader {
		t.Fatalf("Login() error = %v, want missing_header", err)
	}
	if len(store.ops) != 0 {
		t.Errorf("store operations = %v, want none", store.ops)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	service := NewService(store, nil)

	for i := 0; i < 2; i++ {
		if err := service.Logout(context.Background(), testSession); err != nil {
			t.Fatalf("Logout() call %d error: %v", i+1, err)
		}
	}

	if want := []string{"update", "update"}; !reflect.DeepEqual(store.ops, want) {
		t.Errorf("store operations = %v, want %v", store.ops, want)
	}
}

func TestLogoutPropagatesStoreError(t *testing.T) {
	store := &fakeStore{updateErrs: []error{api.NewStoreUnavailableError("down")}}
	service := NewService(store, nil)

	err := service.Logout(context.Background(), testSession)
	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Logout() error = %v, want store_unavailable", err)
	}
}
