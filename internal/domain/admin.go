package domain

import (
	"fmt"
)

// AdminCredential is the single shared dashboard credential. It is seeded at
// startup and never changed through the API.
type AdminCredential struct {
	ID           int64
	PasswordHash string
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
}
