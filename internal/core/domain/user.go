package domain

import "time"

// User is the buyer ledger: purchase totals, bonus balance and the
// optional referrer, set at most once and only before the first purchase.
type User struct {
	ID             int64
	Username       string
	FirstName      string
	LastName       string
	FirstSeen      time.Time
	LastSeen       time.Time
	TotalPurchases int64
	TotalSpent     int64
	BonusBalance   int64
	ReferrerID     *int64
	// InvitedCount is derived from other users' referrer links, never stored.
	InvitedCount int64 `json:"-"`
}
