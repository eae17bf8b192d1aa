package handlers

import (
	"github.com/mariposa/wedding-rsvp/internal/service"
)

type Handlers struct {
	rsvpService service.RsvpService
	authService service.AuthService
}

func New(rsvpService service.RsvpService, authService service.AuthService) *Handlers {
	return &Handlers{
		rsvpService: rsvpService,
		authService: authService,
	}
}
