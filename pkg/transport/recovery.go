package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/jsonld"
)

// Recovery returns middleware that catches panics in the handler and
// converts them to JSON-LD error responses. The server continues to
// accept new requests after a panic is recovered.
func Recovery(codec *jsonld.Codec, logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
						slog.String("request_id", RequestIDFromContext(r.Context())),
						slog.String("panic", fmt.Sprintf("%v", rec)),
					)
					WriteError(w, codec, api.NewServerError("The server encountered an unexpected condition"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
