// Package notifier delivers buyer/staff messages through the chat platform.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/domain"
	"go.uber.org/zap"
)

const defaultAPIBase = "https://api.telegram.org"

type Telegram struct {
	logger        *zap.Logger
	httpClient    *http.Client
	apiBase       string
	token         string
	managerIDs    []int64
	ticketsChatID int64
}

func NewTelegram(cfg *config.Telegram, log *zap.Logger) (*Telegram, error) {
	return &Telegram{
		logger:        log,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		apiBase:       defaultAPIBase,
		token:         cfg.Token,
		managerIDs:    cfg.ManagerIDs,
		ticketsChatID: cfg.TicketsChatID,
	}, nil
}

// WithAPIBase points the client at a different API host. Tests use it with
// a local test server.
func (t *Telegram) WithAPIBase(base string) *Telegram {
	t.apiBase = base
	return t
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

func (t *Telegram) NotifyBuyer(ctx context.Context, buyerID int64, text string) error {
	return t.send(ctx, buyerID, text)
}

// NotifyStaff fans out to every configured manager. A failure for one
// recipient is logged and does not stop the rest.
func (t *Telegram) NotifyStaff(ctx context.Context, text string) {
	for _, managerID := range t.managerIDs {
		if err := t.send(ctx, managerID, text); err != nil {
			t.logger.Error("Failed to notify manager",
				zap.Int64("manager", managerID), zap.Error(err))
		}
	}
}

// SendTicket posts the ticket card to the tickets chat, then a separate
// status message staff edit by hand as they work the ticket.
func (t *Telegram) SendTicket(ctx context.Context, ticket *domain.Ticket) error {
	if err := t.send(ctx, t.ticketsChatID, ticketCardText(ticket)); err != nil {
		return err
	}
	return t.send(ctx, t.ticketsChatID, ticketStatusText(ticket))
}

func (t *Telegram) send(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error building send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response %v sending message to chat %d", resp.StatusCode, chatID)
	}

	return nil
}

func ticketCardText(ticket *domain.Ticket) string {
	paidTime := time.Now().Format("02.01.2006 15:04")

	text := "🆕 *НОВАЯ ОПЛАТА*\n" +
		fmt.Sprintf("🕒 Время: *%s*\n\n", paidTime) +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", ticket.ID) +
		fmt.Sprintf("📦 Товар: *%s*\n", ticket.ProductTitle) +
		fmt.Sprintf("💰 Сумма: *%s %s*\n", ticket.Amount, ticket.Asset)

	if ticket.PromoCode != "" {
		text += fmt.Sprintf("🏷 Промокод: *%s*\n", ticket.PromoCode)
	}

	username := ticket.BuyerUsername
	if username == "" {
		username = "—"
	}
	text += fmt.Sprintf("\n👤 Покупатель: @%s\n", username) +
		fmt.Sprintf("🆔 User ID: [%d](tg://user?id=%d)", ticket.BuyerID, ticket.BuyerID)

	return text
}

func ticketStatusText(ticket *domain.Ticket) string {
	return fmt.Sprintf("🧾 *#%s*\nСтатус: ⏳ *В процессе*", ticket.ID)
}
