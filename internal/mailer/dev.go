package mailer

import (
	"fmt"

	"github.com/mariposa/wedding-rsvp/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendRsvpConfirmation(toEmail, firstName, response string, guestCount int) error {
	logger.Info("📧 [DEV MAIL] RSVP Confirmation",
		"to", toEmail,
		"name", firstName,
		"response", response,
		"guest_count", guestCount,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 RSVP CONFIRMATION (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: We received your RSVP\n"+
		"\n"+
		"Response: %s\n"+
		"Additional guests: %d\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, firstName, response, guestCount)

	return nil
}
