package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
)

// PasetoToken issues short-lived staff tokens. The symmetric key lives only
// in process memory: restarting the service invalidates outstanding tokens,
// which is acceptable for the staff API.
type PasetoToken struct {
	parser   *paseto.Parser
	key      *paseto.V4SymmetricKey
	duration time.Duration
}

func New(duration time.Duration) (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser:   &parser,
		key:      &key,
		duration: duration,
	}

	return &s, nil
}

func (s *PasetoToken) CreateToken(staffID string) (string, error) {
	token := paseto.NewToken()

	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.duration))
	token.SetString("staff_id", staffID)

	return token.V4Encrypt(*s.key, nil), nil
}

func (s *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsed, err := s.parser.ParseV4Local(*s.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	staffID, err := parsed.GetString("staff_id")
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	issuedAt, err := parsed.GetIssuedAt()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	expiredAt, err := parsed.GetExpiration()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if time.Now().After(expiredAt) {
		return nil, domain.ErrExpiredToken
	}

	return &port.TokenPayload{
		StaffID:   staffID,
		IssuedAt:  issuedAt,
		ExpiredAt: expiredAt,
	}, nil
}
