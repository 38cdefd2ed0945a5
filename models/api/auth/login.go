package authapimodels

import (
	"staff-portal-backend/models"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email string `json:"email"`
	// Role is the fallback when no seeded identity matches the email.
	Role models.UserRole `json:"role"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}
