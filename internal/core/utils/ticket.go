package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewTicketID returns a short human-readable ticket code: 8 uppercase
// hex characters, generated once per order and reused in every message
// about it.
func NewTicketID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:4]))
}
