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

// SubmitRsvp handles the public RSVP form submission
func (h *Handlers) SubmitRsvp(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitRsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	rsvp, err := h.rsvpService.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(w, err.Error())
			return
		}
		logger.ErrorContext(r.Context(), "Error submitting RSVP", "error", err)
		response.InternalError(w, "Error submitting RSVP")
		return
	}

	logger.InfoContext(r.Context(), "RSVP submitted",
		"rsvp_id", rsvp.ID,
		"response", rsvp.Response,
		"guest_count", len(rsvp.AdditionalGuests),
	)

	response.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "RSVP submitted successfully",
	})
}

type reportResponse struct {
	Rsvps []domain.Rsvp `json:"rsvps"`
	Stats *domain.Stats `json:"stats"`
}

// ListRsvps returns the admin dashboard data: all RSVPs with their guests,
// most recent first, plus aggregate counts.
func (h *Handlers) ListRsvps(w http.ResponseWriter, r *http.Request) {
	rsvps, stats, err := h.rsvpService.Report(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Error fetching RSVPs", "error", err)
		response.InternalError(w, "Error fetching RSVPs")
		return
	}

	response.WriteJSON(w, http.StatusOK, reportResponse{Rsvps: rsvps, Stats: stats})
}
