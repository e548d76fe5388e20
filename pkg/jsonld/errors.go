package jsonld

import (
	"github.com/google/uuid"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/rdf"
)

// ErrorGraph builds the statement set describing a single error record:
// a blank node typed oslc:Error with a fresh uuid and the client-facing
// message. Service errors contribute their message as-is; any other error
// contributes its Error() text.
func ErrorGraph(err error) *rdf.Graph {
	message := err.Error()
	if e, ok := api.AsError(err); ok {
		message = e.Message
	}

	ns := rdf.Namespaces
	record := rdf.NewBlankNode(uuid.NewString())

	graph := rdf.NewGraph()
	graph.Add(record, ns.RDF.IRI("type"), ns.OSLC.IRI("Error"))
	graph.Add(record, ns.Mu.IRI("uuid"), rdf.NewLiteral(uuid.NewString()))
	graph.Add(record, ns.OSLC.IRI("message"), rdf.NewLiteral(message))
	return graph
}
