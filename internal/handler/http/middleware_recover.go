package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

const panicMessage = "Something went wrong!"

// withRecover turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so that net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			logger.FromRequest(r).Error().
				Err(err).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			h.respondInternal(w, r, panicMessage, err)
		}()

		next.ServeHTTP(w, r)
	})
}
