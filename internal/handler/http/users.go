package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err, "Error registering user")
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Error registering user")
		return
	}

	h.respondData(w, r, http.StatusCreated, "User registered successfully", models.NewUserResponse(user))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err, "Error logging in")
		return
	}

	user, err := h.services.UserService.Login(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Error logging in")
		return
	}

	h.respondData(w, r, http.StatusOK, "Login successful", models.NewUserResponse(user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Error retrieving users")
		return
	}

	h.respond(w, r, http.StatusOK, models.NewListResponse("Users retrieved successfully", users))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ErrInvalidUserID)
	if err != nil {
		h.respondError(w, r, err, "Error deleting user")
		return
	}

	user, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Error deleting user")
		return
	}

	h.respondData(w, r, http.StatusOK, "User deleted successfully", models.NewDeletedUserResponse(user))
}
