package transport

import (
	"encoding/json"
	"net/http"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/jsonld"
)

// WriteError renders err as a compacted, framed JSON-LD error document.
// The status comes from the error's hint when it is a service error and
// defaults to 400 otherwise, matching the behavior clients of the stack
// already rely on.
func WriteError(w http.ResponseWriter, codec *jsonld.Codec, err error) {
	status := http.StatusBadRequest
	if e, ok := api.AsError(err); ok {
		status = e.StatusOrDefault()
	}

	document, encodeErr := codec.Encode(jsonld.ErrorGraph(err), jsonld.ErrorResponseContext, jsonld.ErrorResponseFrame)
	if encodeErr != nil {
		// Rendering the error itself failed; fall back to a bare document
		// with the same field names the context would have produced.
		document = map[string]any{"errorMessage": err.Error()}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(document)
}
