package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/observability"
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// Service composes credential verification and the session lifecycle into
// the login and logout use cases.
type Service struct {
	verifier  *Verifier
	lifecycle *Lifecycle
	logger    *slog.Logger
}

// NewService creates the login service on top of the privileged store
// client.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		verifier:  NewVerifier(store, logger),
		lifecycle: NewLifecycle(store),
		logger:    logger,
	}
}

// Login runs the full login sequence on a validated request graph:
// extract the request terms, verify the credentials, drop every session
// the account still holds, and create the replacement. Verification must
// succeed before any write is issued; the deletion completes before the
// creation starts. The returned graph holds the statements for the
// response document.
func (s *Service) Login(ctx context.Context, graph *rdf.Graph) (*rdf.Graph, error) {
	ns := rdf.Namespaces

	organization := graph.FirstObject(nil, ns.Pav.IRI("createdBy"))
	publisher := graph.FirstObject(nil, ns.Pav.IRI("providedBy"))
	key := graph.FirstObject(publisher, ns.MuAccount.IRI("key"))
	session, ok := graph.FirstSubject(ns.RDF.IRI("type"), ns.Session.IRI("Session")).(rdf.IRI)
	if !ok {
		return nil, api.NewMissingHeaderError("mu-session-id")
	}

	organizationID, err := s.verifier.Verify(ctx, publisher, key, organization)
	if err != nil {
		s.countLogin(err)
		return nil, err
	}

	if err := s.lifecycle.RemoveAll(ctx, session); err != nil {
		s.countLogin(err)
		return nil, err
	}

	loginDetails, err := s.lifecycle.Create(ctx, session, publisher, organization)
	if err != nil {
		s.countLogin(err)
		return nil, err
	}

	s.countLogin(nil)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "vendor logged in",
		slog.String("session", session.TermValue()),
		slog.String("account", publisher.TermValue()),
		slog.String("organization_id", organizationID.TermValue()),
	)
	return loginDetails, nil
}

// Logout removes every session for the account behind the given session
// IRI. No credential check happens here: the session identifier was
// attached by the identifier at the perimeter and is trusted as-is.
// Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context, session rdf.IRI) error {
	if err := s.lifecycle.RemoveAll(ctx, session); err != nil {
		observability.LogoutsTotal.WithLabelValues("error").Inc()
		return err
	}
	observability.LogoutsTotal.WithLabelValues("success").Inc()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "vendor logged out",
		slog.String("session", session.TermValue()),
	)
	return nil
}

func (s *Service) countLogin(err error) {
	switch {
	case err == nil:
		observability.LoginsTotal.WithLabelValues("success").Inc()
	case isAuthenticationFailed(err):
		observability.LoginsTotal.WithLabelValues("denied").Inc()
	default:
		observability.LoginsTotal.WithLabelValues("error").Inc()
	}
}

func isAuthenticationFailed(err error) bool {
	var e *api.Error
	return errors.As(err, &e) && e.Type == api.ErrorTypeAuthenticationFailed
}
