package mailer

// Service sends guest-facing mail. Sending is best-effort; callers log
// failures and never fail the request over them.
type Service interface {
	SendRsvpConfirmation(toEmail, firstName, response string, guestCount int) error
}
