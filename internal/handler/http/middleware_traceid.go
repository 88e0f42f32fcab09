package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID echoes the X-Trace-ID request header or generates a new one,
// and stores a child logger carrying it in the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.WithTraceID(traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
