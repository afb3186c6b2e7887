package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const webhookVerifyTimeout = 30 * time.Second
const webhookVerifyAttempts = 3
const webhookVerifyPause = 2 * time.Second

// WebhookHandler receives provider callbacks. The callback body is treated
// as a hint only: the transaction id is extracted and the status is
// re-verified against the provider API before the order is touched. Both
// endpoints always answer 200 so a provider never retries into us because
// of our own processing errors.
type WebhookHandler struct {
	Handler
	providers map[domain.PaymentMethod]port.PaymentProvider
	pending   port.PendingOrders
	observer  port.PaymentObserver
}

func NewWebhookHandler(
	providers map[domain.PaymentMethod]port.PaymentProvider,
	pending port.PendingOrders,
	observer port.PaymentObserver,
	logger *zap.Logger,
) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler:   *NewHandler(logger),
		providers: providers,
		pending:   pending,
		observer:  observer,
	}, nil
}

type plategaCallback struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
	Transaction   struct {
		ID            string `json:"id"`
		TransactionID string `json:"transactionId"`
	} `json:"transaction"`
}

func (pc plategaCallback) txID() string {
	if pc.Transaction.ID != "" {
		return pc.Transaction.ID
	}
	if pc.Transaction.TransactionID != "" {
		return pc.Transaction.TransactionID
	}
	if pc.TransactionID != "" {
		return pc.TransactionID
	}
	return pc.ID
}

func (wh *WebhookHandler) Platega(ctx *gin.Context) {
	var cb plategaCallback
	if err := ctx.ShouldBindBodyWithJSON(&cb); err != nil {
		wh.logger.Warn("unreadable callback body", zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	txID := cb.txID()
	if txID == "" {
		wh.logger.Warn("callback without transaction id")
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	go wh.verify(txID, domain.PaymentMethodBankTransfer)

	ctx.JSON(http.StatusOK, gin.H{})
}

type cryptoPayCallback struct {
	UpdateType string `json:"update_type"`
	Payload    struct {
		InvoiceID json.Number `json:"invoice_id"`
		Status    string      `json:"status"`
		// Payload carries back the metadata smuggled into the invoice
		// at creation time.
		Payload string `json:"payload"`
	} `json:"payload"`
}

func (wh *WebhookHandler) CryptoPay(ctx *gin.Context) {
	var cb cryptoPayCallback
	if err := ctx.ShouldBindBodyWithJSON(&cb); err != nil {
		wh.logger.Warn("unreadable callback body", zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	txID := cb.Payload.InvoiceID.String()
	if _, err := strconv.ParseInt(txID, 10, 64); err != nil {
		wh.logger.Warn("callback without invoice id",
			zap.String("update", cb.UpdateType))
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	wh.primeMetadata(ctx, txID, cb.Payload.Payload)

	go wh.verify(txID, domain.PaymentMethodCrypto)

	ctx.JSON(http.StatusOK, gin.H{})
}

// primeMetadata seeds the pending-order cache from the invoice's payload so
// the observer has a metadata fast path even after a restart emptied the
// cache. The cache is first-write-wins, so an existing entry stays untouched.
// Only meaning derived from re-verified provider status is ever acted on.
func (wh *WebhookHandler) primeMetadata(ctx context.Context, txID, payload string) {
	if payload == "" {
		return
	}

	var meta domain.PendingOrder
	if err := json.Unmarshal([]byte(payload), &meta); err != nil || meta.OrderID == "" {
		return
	}

	if err := wh.pending.Put(ctx, txID, &meta); err != nil {
		wh.logger.Warn("Cache callback metadata", zap.Error(err))
	}
}

// verify asks the provider for the current status and routes the result
// through the observer. The conditional status update downstream makes
// duplicate and concurrent callbacks harmless.
func (wh *WebhookHandler) verify(txID string, method domain.PaymentMethod) {
	provider, ok := wh.providers[method]
	if !ok {
		wh.logger.Error("no provider for callback",
			zap.String("method", string(method)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), webhookVerifyTimeout)
	defer cancel()

	log := wh.logger.With(zap.String("tx", txID), zap.String("method", string(method)))

	var result *domain.ProviderStatusResult
	var err error
	for attempt := 0; attempt < webhookVerifyAttempts; attempt++ {
		result, err = provider.GetStatus(ctx, txID)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			log.Warn("callback verification gave up", zap.Error(ctx.Err()))
			return
		case <-time.After(webhookVerifyPause):
		}
	}
	if err != nil {
		log.Warn("callback verification failed", zap.Error(err))
		return
	}

	switch result.Status {
	case domain.ProviderStatusConfirmed:
		if err := wh.observer.ConfirmPayment(ctx, txID); err != nil {
			log.Error("confirm after callback", zap.Error(err))
		}
	case domain.ProviderStatusCanceled, domain.ProviderStatusChargeback:
		if err := wh.observer.CancelPayment(ctx, txID); err != nil {
			log.Error("cancel after callback", zap.Error(err))
		}
	default:
		log.Debug("callback for still-pending transaction")
	}
}
