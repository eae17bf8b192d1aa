package service

import (
	"context"
	"fmt"

	"github.com/mariposa/wedding-rsvp/internal/domain"
	"github.com/mariposa/wedding-rsvp/internal/mailer"
	"github.com/mariposa/wedding-rsvp/internal/repo/postgres"
	"github.com/mariposa/wedding-rsvp/pkg/events"
	"github.com/mariposa/wedding-rsvp/pkg/logger"
)

type RsvpService interface {
	Submit(ctx context.Context, req *domain.SubmitRsvpRequest) (*domain.Rsvp, error)
	Report(ctx context.Context) ([]domain.Rsvp, *domain.Stats, error)
}

type rsvpService struct {
	rsvpRepo postgres.RsvpRepo
	mailer   mailer.Service
	eventBus events.Publisher
}

func NewRsvpService(rsvpRepo postgres.RsvpRepo, mailer mailer.Service, eventBus events.Publisher) RsvpService {
	return &rsvpService{
		rsvpRepo: rsvpRepo,
		mailer:   mailer,
		eventBus: eventBus,
	}
}

// Submit validates and atomically persists one RSVP with its guest list.
// Guests sent with a "no" response are dropped, matching the public form's
// behavior of always sending the array.
func (s *rsvpService) Submit(ctx context.Context, req *domain.SubmitRsvpRequest) (*domain.Rsvp, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	guests := req.AdditionalGuests
	if req.Response != domain.ResponseYes {
		guests = nil
	}

	rsvp, err := s.rsvpRepo.CreateWithGuests(ctx, req, guests)
	if err != nil {
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	// Best-effort side effects after commit. Neither may fail the request.
	if err := s.eventBus.Publish(ctx, events.RsvpSubmitted, events.RsvpSubmittedEvent{
		RsvpID:     rsvp.ID,
		Response:   rsvp.Response,
		GuestCount: len(rsvp.AdditionalGuests),
		CreatedAt:  rsvp.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish rsvp.submitted event", "error", err, "rsvp_id", rsvp.ID)
	}

	if err := s.mailer.SendRsvpConfirmation(rsvp.Email, rsvp.FirstName, rsvp.Response, len(rsvp.AdditionalGuests)); err != nil {
		logger.WarnContext(ctx, "Failed to send confirmation email", "error", err, "rsvp_id", rsvp.ID)
	}

	return rsvp, nil
}

// Report returns every RSVP with its guests, most recent first, plus the
// aggregate counts for the dashboard header.
func (s *rsvpService) Report(ctx context.Context) ([]domain.Rsvp, *domain.Stats, error) {
	rsvps, err := s.rsvpRepo.ListWithGuests(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	stats, err := s.rsvpRepo.Stats(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return rsvps, stats, nil
}
