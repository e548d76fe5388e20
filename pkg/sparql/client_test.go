package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lblod/vendor-login-service/pkg/api"
)

const resultsJSON = `{
	"head": {"vars": ["organizationID"]},
	"results": {"bindings": [
		{"organizationID": {"type": "literal", "value": "org-uuid-1"}}
	]}
}`

func TestQuerySendsSudoRequest(t *testing.T) {
	var gotQuery, gotSudo, gotCallID, gotAccept string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotQuery = r.PostFormValue("query")
		gotSudo = r.Header.Get("mu-auth-sudo")
		gotCallID = r.Header.Get("mu-call-id")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(resultsJSON))
	}))
	defer srv.Close()

	client := NewSudoClient(srv.URL)
	results, err := client.Query(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	if gotQuery != "SELECT * WHERE { ?s ?p ?o }" {
		t.Errorf("query form value = %q", gotQuery)
	}
	if gotSudo != "true" {
		t.Errorf("mu-auth-sudo header = %q, want true", gotSudo)
	}
	if gotCallID == "" {
		t.Error("mu-call-id header is empty")
	}
	if gotAccept != "application/sparql-results+json" {
		t.Errorf("Accept header = %q", gotAccept)
	}

	if results.Empty() {
		t.Fatal("results are empty")
	}
	organizationID := results.Bindings()[0].Term("organizationID")
	if organizationID == nil || organizationID.TermValue() != "org-uuid-1" {
		t.Errorf("organizationID = %v, want org-uuid-1", organizationID)
	}
}

func TestUpdateSendsUpdateForm(t *testing.T) {
	var gotUpdate string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotUpdate = r.PostFormValue("update")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewSudoClient(srv.URL)
	if err := client.Update(context.Background(), "INSERT DATA { <urn:a> <urn:b> <urn:c> }"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if gotUpdate != "INSERT DATA { <urn:a> <urn:b> <urn:c> }" {
		t.Errorf("update form value = %q", gotUpdate)
	}
}

func TestQueryEndpointErrorIsStoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "virtuoso exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSudoClient(srv.URL)
	_, err := client.Query(context.Background(), "SELECT * WHERE { ?s ?p ?o }")

	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Query() error = %v, want store_unavailable", err)
	}
	if e.StatusOrDefault() != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", e.StatusOrDefault())
	}
}

func TestQueryNetworkFailureIsStoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client := NewSudoClient(srv.URL)
	_, err := client.Query(context.Background(), "SELECT * WHERE { ?s ?p ?o }")

	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Query() error = %v, want store_unavailable", err)
	}
}

func TestQueryUnreadableResultsIsStoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	client := NewSudoClient(srv.URL)
	_, err := client.Query(context.Background(), "SELECT * WHERE { ?s ?p ?o }")

	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Query() error = %v, want store_unavailable", err)
	}
}

func TestUpdateEndpointErrorIsStoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewSudoClient(srv.URL)
	err := client.Update(context.Background(), "INSERT DATA { <urn:a> <urn:b> <urn:c> }")

	e, ok := api.AsError(err)
	if !ok || e.Type != api.ErrorTypeStoreUnavailable {
		t.Fatalf("Update() error = %v, want store_unavailable", err)
	}
}
