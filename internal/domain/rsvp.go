package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	ResponseYes = "yes"
	ResponseNo  = "no"
)

type Rsvp struct {
	ID               int64             `json:"id"`
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Response         string            `json:"response"`
	CreatedAt        time.Time         `json:"createdAt"`
	AdditionalGuests []AdditionalGuest `json:"additionalGuests"`
}

type AdditionalGuest struct {
	ID        int64  `json:"-"`
	RsvpID    int64  `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Stats are the aggregate counts shown on the admin dashboard.
type Stats struct {
	Total        int64 `json:"total"`
	Attending    int64 `json:"attending"`
	NotAttending int64 `json:"not_attending"`
	TotalGuests  int64 `json:"total_guests"`
}

type GuestInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SubmitRsvpRequest struct {
	FirstName        string       `json:"firstName"`
	LastName         string       `json:"lastName"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Response         string       `json:"response"`
	AdditionalGuests []GuestInput `json:"additionalGuests"`
}

func (r *SubmitRsvpRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Response = strings.ToLower(strings.TrimSpace(r.Response))
	for i := range r.AdditionalGuests {
		r.AdditionalGuests[i].FirstName = strings.TrimSpace(r.AdditionalGuests[i].FirstName)
		r.AdditionalGuests[i].LastName = strings.TrimSpace(r.AdditionalGuests[i].LastName)
	}
}

func (r *SubmitRsvpRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.Response != ResponseYes && r.Response != ResponseNo {
		return fmt.Errorf("response must be %q or %q", ResponseYes, ResponseNo)
	}
	if r.Response == ResponseYes {
		for i, g := range r.AdditionalGuests {
			if g.FirstName == "" || g.LastName == "" {
				return fmt.Errorf("additional guest %d needs a first and last name", i+1)
			}
		}
	}
	return nil
}
