package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendRsvpConfirmation(toEmail, firstName, response string, guestCount int) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "We received your RSVP"

	line := "We're sorry you can't make it. Thank you for letting us know."
	if response == "yes" {
		line = "We can't wait to celebrate with you!"
		if guestCount == 1 {
			line += " Your additional guest is on the list too."
		} else if guestCount > 1 {
			line += fmt.Sprintf(" Your %d additional guests are on the list too.", guestCount)
		}
	}

	html := fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>Your RSVP has been recorded.</p>
		<p>%s</p>
		<p>If anything changes, just reach out to us directly.</p>
	`, firstName, line)

	text := fmt.Sprintf("Thank you, %s! Your RSVP has been recorded.\n\n%s", firstName, line)

	return m.sendEmail(toEmail, firstName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
