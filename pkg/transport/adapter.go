package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/jsonld"
	"github.com/lblod/vendor-login-service/pkg/rdf"
	"github.com/lblod/vendor-login-service/pkg/session"
)

// SessionIDHeader is attached to every request by the mu-identifier at
// the perimeter and carries the caller's session IRI.
const SessionIDHeader = "Mu-Session-Id"

// allowGroupsHeader signals the dispatcher to clear its access-rights
// cache for this session after a successful login or logout.
const allowGroupsHeader = "mu-auth-allow-groups"

// LoginService is the slice of the session service the adapter depends
// on. *session.Service satisfies it.
type LoginService interface {
	Login(ctx context.Context, graph *rdf.Graph) (*rdf.Graph, error)
	Logout(ctx context.Context, session rdf.IRI) error
}

// Adapter serves the vendor login API over HTTP.
type Adapter struct {
	service LoginService
	codec   *jsonld.Codec
	mux     *http.ServeMux
	config  Config
}

// Config holds configuration for the HTTP adapter.
type Config struct {
	MaxBodySize int64
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		MaxBodySize: 1 << 20, // 1 MB
	}
}

// NewAdapter creates an HTTP adapter around the given login service.
func NewAdapter(service LoginService, cfg Config) *Adapter {
	a := &Adapter{
		service: service,
		codec:   jsonld.NewCodec(),
		mux:     http.NewServeMux(),
		config:  cfg,
	}

	a.mux.HandleFunc("POST /sessions", a.handleLogin)
	a.mux.HandleFunc("DELETE /sessions/current", a.handleLogout)
	a.mux.HandleFunc("GET /healthz", a.handleHealth)

	return a
}

// Handler returns the http.Handler for this adapter with the default
// middleware applied. Use this to integrate with an http.Server or to
// test with httptest.
func (a *Adapter) Handler(logger *slog.Logger) http.Handler {
	return Chain(
		Recovery(a.codec, logger),
		RequestID(),
		Logging(logger),
	)(a.mux)
}

// Mux returns the bare route multiplexer without middleware.
func (a *Adapter) Mux() http.Handler {
	return a.mux
}

// handleLogin handles POST /sessions.
func (a *Adapter) handleLogin(w http.ResponseWriter, r *http.Request) {
	// Reject unsupported content types before touching body or store.
	if !validContentType(r.Header.Get("Content-Type")) {
		WriteError(w, a.codec, api.NewMalformedPayloadError(
			"Content-Type not valid, only application/json or application/ld+json are accepted"))
		return
	}

	sessionID := r.Header.Get(SessionIDHeader)
	if sessionID == "" {
		WriteError(w, a.codec, api.NewMissingHeaderError("mu-session-id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, a.codec, api.NewMalformedPayloadError(
			"The request body could not be read as a JSON-LD document"))
		return
	}

	graph, err := a.codec.Decode(body)
	if err != nil {
		WriteError(w, a.codec, err)
		return
	}

	// The session IRI comes from the identifier, not the payload.
	ns := rdf.Namespaces
	graph.Add(rdf.NewIRI(sessionID), ns.RDF.IRI("type"), ns.Session.IRI("Session"))

	if err := session.ValidatePayload(graph); err != nil {
		WriteError(w, a.codec, err)
		return
	}

	loginDetails, err := a.service.Login(r.Context(), graph)
	if err != nil {
		WriteError(w, a.codec, err)
		return
	}

	document, err := a.codec.Encode(loginDetails, jsonld.LoginResponseContext, jsonld.LoginResponseFrame)
	if err != nil {
		WriteError(w, a.codec, err)
		return
	}

	w.Header().Set(allowGroupsHeader, "CLEAR")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(document)
}

// handleLogout handles DELETE /sessions/current.
func (a *Adapter) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionIDHeader)
	if sessionID == "" {
		WriteError(w, a.codec, api.NewMissingHeaderError("mu-session-id"))
		return
	}

	if err := a.service.Logout(r.Context(), rdf.NewIRI(sessionID)); err != nil {
		WriteError(w, a.codec, err)
		return
	}

	w.Header().Set(allowGroupsHeader, "CLEAR")
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles GET /healthz.
func (a *Adapter) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// validContentType reports whether the request media type is one this
// service accepts.
func validContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || mediaType == "application/ld+json"
}
