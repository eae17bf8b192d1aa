package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends through a plain SMTP relay, e.g. a local mailpit in
// development or a provider relay in production.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (s *SMTPMailer) SendRsvpConfirmation(toEmail, firstName, response string, guestCount int) error {
	subject := "We received your RSVP"

	line := "We're sorry you can't make it. Thank you for letting us know."
	if response == "yes" {
		line = "We can't wait to celebrate with you!"
		if guestCount > 0 {
			line += fmt.Sprintf(" Your party of %d is on the list.", guestCount+1)
		}
	}

	body := fmt.Sprintf("Thank you, %s! Your RSVP has been recorded.\r\n\r\n%s\r\n", firstName, line)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	return smtp.SendMail(addr, auth, s.from, []string{toEmail}, []byte(msg.String()))
}
