package session

import (
	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// ValidatePayload checks a decoded login request graph for the minimal
// required shape: an organization reference, a publisher reference, and
// an API key attached to that publisher. When a relation appears more
// than once only the first statement counts; the payload is treated as
// single-valued throughout.
func ValidatePayload(graph *rdf.Graph) error {
	ns := rdf.Namespaces

	if !graph.Any(ns.Pav.IRI("createdBy")) {
		return api.NewMissingFieldError("The payload is missing an organization field")
	}

	publisher := graph.FirstObject(nil, ns.Pav.IRI("providedBy"))
	if publisher == nil {
		return api.NewMissingFieldError("The payload is missing a publisher object with URI and key")
	}

	if graph.FirstObject(publisher, ns.MuAccount.IRI("key")) == nil {
		return api.NewMissingFieldError("The payload is missing its API key for the publisher")
	}

	return nil
}
