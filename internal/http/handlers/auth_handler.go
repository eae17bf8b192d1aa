package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mariposa/wedding-rsvp/internal/domain"
	"github.com/mariposa/wedding-rsvp/internal/http/response"
	"github.com/mariposa/wedding-rsvp/internal/service"
	"github.com/mariposa/wedding-rsvp/pkg/logger"
)

// Login exchanges the shared admin password for a bearer token
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	res, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, service.ErrInvalidPassword):
			response.Unauthorized(w, "Invalid password")
		case errors.Is(err, service.ErrCredentialsNotFound):
			// Misconfiguration: the bootstrap seeds this row at startup.
			logger.ErrorContext(r.Context(), "Admin credential row missing", "error", err)
			response.InternalError(w, "Error during login")
		default:
			logger.ErrorContext(r.Context(), "Error during login", "error", err)
			response.InternalError(w, "Error during login")
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, res)
}
