package port

import (
	"time"
)

type TokenPayload struct {
	StaffID   string
	IssuedAt  time.Time
	ExpiredAt time.Time
}

// TokenService issues and verifies staff API tokens.
type TokenService interface {
	CreateToken(staffID string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
