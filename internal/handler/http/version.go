package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

// getServerVersion answers with the bare configured version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

// describe serves the endpoint listing on the root path. It is the only
// response that is not wrapped in the envelope.
func (h *Handler) describe(w http.ResponseWriter, r *http.Request) {
	h.respondRaw(w, r, http.StatusOK, h.services.AppInfoService.Describe(r.Context()))
}
