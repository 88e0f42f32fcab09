package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/MKhiriev/go-catalog-api/models"
)

const (
	validationErrorMessage = "Validation error"
	internalErrorDetail    = "Internal Server Error"
)

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, resp models.Response) {
	h.respondRaw(w, r, status, resp)
}

func (h *Handler) respondRaw(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) respondData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	h.respond(w, r, status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError translates err into an error envelope. failureMessage is used
// for every error that has no mapped status.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, failureMessage string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var ve *validators.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Debug().Strs("errors", ve.Messages).Msg("validation failed")
		h.respond(w, r, status, models.Response{
			Message: validationErrorMessage,
			Errors:  ve.Messages,
		})
		return

	case status == http.StatusInternalServerError:
		log.Err(err).Msg(failureMessage)
		h.respondInternal(w, r, failureMessage, err)
		return
	}

	message, ok := messageFromError(err)
	if !ok {
		message = err.Error()
	}
	log.Debug().Err(err).Int("status", status).Msg(message)

	h.respond(w, r, status, models.Response{Message: message})
}

// respondInternal writes a 500 envelope. The error detail is only exposed in
// development.
func (h *Handler) respondInternal(w http.ResponseWriter, r *http.Request, message string, err error) {
	detail := internalErrorDetail
	if h.development && err != nil {
		detail = err.Error()
	}

	h.respond(w, r, http.StatusInternalServerError, models.Response{
		Message: message,
		Error:   detail,
	})
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusNotFound, models.Response{Message: "Route not found"})
}
