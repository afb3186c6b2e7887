package port

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
)

// Notifier is the chat-platform boundary. NotifyStaff fans out to every
// configured staff recipient and logs per-recipient failures itself.
type Notifier interface {
	NotifyBuyer(ctx context.Context, buyerID int64, text string) error
	NotifyStaff(ctx context.Context, text string)
	SendTicket(ctx context.Context, ticket *domain.Ticket) error
}

// TicketPublisher pushes finalized-order tickets to the support desk queue.
type TicketPublisher interface {
	PublishTicket(ctx context.Context, ticket *domain.Ticket) error
}
