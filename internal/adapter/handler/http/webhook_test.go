package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	handler "github.com/akozyrev/storepay/internal/adapter/handler/http"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/akozyrev/storepay/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type observerCall struct {
	kind string
	txID string
}

// recordingObserver collects observer invocations across the handler's
// verification goroutine.
type recordingObserver struct {
	mu    sync.Mutex
	calls []observerCall
	done  chan struct{}
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{done: make(chan struct{}, 8)}
}

func (r *recordingObserver) record(kind, txID string) {
	r.mu.Lock()
	r.calls = append(r.calls, observerCall{kind: kind, txID: txID})
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recordingObserver) ConfirmPayment(_ context.Context, txID string) error {
	r.record("confirm", txID)
	return nil
}

func (r *recordingObserver) CancelPayment(_ context.Context, txID string) error {
	r.record("cancel", txID)
	return nil
}

func (r *recordingObserver) TimeoutPayment(_ context.Context, txID string) error {
	r.record("timeout", txID)
	return nil
}

func (r *recordingObserver) wait(t *testing.T) observerCall {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("observer was not called")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func webhookRouter(t *testing.T, provider port.PaymentProvider, pending port.PendingOrders, observer port.PaymentObserver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewDevelopment()
	wh, err := handler.NewWebhookHandler(
		map[domain.PaymentMethod]port.PaymentProvider{
			domain.PaymentMethodBankTransfer: provider,
			domain.PaymentMethodCrypto:       provider,
		},
		pending, observer, logger)
	assert.NoError(t, err)

	r := gin.New()
	r.POST("/webhooks/platega", wh.Platega)
	r.POST("/webhooks/cryptopay", wh.CryptoPay)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_PlategaConfirmedAfterVerification(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mock.NewMockPaymentProvider(mockCtrl)
	provider.EXPECT().GetStatus(gomock.Any(), "tx-1").
		Return(&domain.ProviderStatusResult{Status: domain.ProviderStatusConfirmed}, nil)

	observer := newRecordingObserver()
	r := webhookRouter(t, provider, mock.NewMockPendingOrders(mockCtrl), observer)

	w := postJSON(r, "/webhooks/platega", `{"transaction":{"id":"tx-1"},"status":"CONFIRMED"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	call := observer.wait(t)
	assert.Equal(t, observerCall{kind: "confirm", txID: "tx-1"}, call)
}

func TestWebhook_PlategaBodyStatusIsIgnored(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// the callback claims CONFIRMED but the provider says the payment is
	// still pending, so nothing reaches the observer
	provider := mock.NewMockPaymentProvider(mockCtrl)
	verified := make(chan struct{})
	provider.EXPECT().GetStatus(gomock.Any(), "tx-2").
		DoAndReturn(func(context.Context, string) (*domain.ProviderStatusResult, error) {
			defer close(verified)
			return &domain.ProviderStatusResult{Status: domain.ProviderStatusPending}, nil
		})

	observer := newRecordingObserver()
	r := webhookRouter(t, provider, mock.NewMockPendingOrders(mockCtrl), observer)

	w := postJSON(r, "/webhooks/platega", `{"transactionId":"tx-2","status":"CONFIRMED"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case <-verified:
	case <-time.After(5 * time.Second):
		t.Fatal("status was not verified")
	}
	observer.mu.Lock()
	defer observer.mu.Unlock()
	assert.Empty(t, observer.calls)
}

func TestWebhook_CryptoPayInvoicePaid(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mock.NewMockPaymentProvider(mockCtrl)
	provider.EXPECT().GetStatus(gomock.Any(), "777").
		Return(&domain.ProviderStatusResult{Status: domain.ProviderStatusConfirmed}, nil)

	observer := newRecordingObserver()
	r := webhookRouter(t, provider, mock.NewMockPendingOrders(mockCtrl), observer)

	w := postJSON(r, "/webhooks/cryptopay",
		`{"update_type":"invoice_paid","payload":{"invoice_id":777,"status":"paid"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	call := observer.wait(t)
	assert.Equal(t, observerCall{kind: "confirm", txID: "777"}, call)
}

func TestWebhook_CryptoPayPayloadSeedsPendingCache(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mock.NewMockPaymentProvider(mockCtrl)
	provider.EXPECT().GetStatus(gomock.Any(), "778").
		Return(&domain.ProviderStatusResult{Status: domain.ProviderStatusConfirmed}, nil)

	// the invoice carries the metadata back; the handler seeds the cache
	// with it before verification so the observer skips the store read
	pending := mock.NewMockPendingOrders(mockCtrl)
	pending.EXPECT().Put(gomock.Any(), "778", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, meta *domain.PendingOrder) error {
			assert.Equal(t, "order-9", meta.OrderID)
			assert.Equal(t, int64(42), meta.BuyerID)
			assert.Equal(t, int64(800), meta.FinalPrice)
			return nil
		})

	observer := newRecordingObserver()
	r := webhookRouter(t, provider, pending, observer)

	w := postJSON(r, "/webhooks/cryptopay",
		`{"update_type":"invoice_paid","payload":{"invoice_id":778,"status":"paid",`+
			`"payload":"{\"order_id\":\"order-9\",\"buyer_id\":42,\"final_price_rub\":800}"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	call := observer.wait(t)
	assert.Equal(t, observerCall{kind: "confirm", txID: "778"}, call)
}

func TestWebhook_MalformedBodiesStillAck(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mock.NewMockPaymentProvider(mockCtrl)
	observer := newRecordingObserver()
	r := webhookRouter(t, provider, mock.NewMockPendingOrders(mockCtrl), observer)

	for _, body := range []string{
		``,
		`not json at all`,
		`{}`,
		`{"transaction":{}}`,
		`{"update_type":"invoice_paid","payload":{}}`,
	} {
		w := postJSON(r, "/webhooks/platega", body)
		assert.Equal(t, http.StatusOK, w.Code, "platega body %q", body)

		w = postJSON(r, "/webhooks/cryptopay", body)
		assert.Equal(t, http.StatusOK, w.Code, "cryptopay body %q", body)
	}
}
