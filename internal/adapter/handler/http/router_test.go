package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akozyrev/storepay/internal/adapter/auth"
	"github.com/akozyrev/storepay/internal/adapter/config"
	handler "github.com/akozyrev/storepay/internal/adapter/handler/http"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/akozyrev/storepay/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testStaffKey = "ops-key"

func newRouter(t *testing.T, svc port.Service) *handler.Router {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	tokenService, err := auth.New(time.Hour)
	require.NoError(t, err)

	orderHandler, err := handler.NewOrderHandler(svc, logger)
	require.NoError(t, err)
	userHandler, err := handler.NewUserHandler(svc, logger)
	require.NoError(t, err)
	staffHandler, err := handler.NewStaffHandler(svc, tokenService, testStaffKey, logger)
	require.NoError(t, err)
	webhookHandler, err := handler.NewWebhookHandler(nil, nil, nil, logger)
	require.NoError(t, err)

	r, err := handler.NewRouter(&config.HTTP{}, tokenService,
		orderHandler, userHandler, staffHandler, webhookHandler)
	require.NoError(t, err)
	return r
}

func do(r *handler.Router, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func staffToken(t *testing.T, r *handler.Router) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/staff/login",
		`{"staff_id":"ops-1","key":"`+testStaffKey+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_CreateCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().CreateCheckout(gomock.Any(), port.CheckoutRequest{
		BuyerID:   7,
		ProductID: "course-go",
		Method:    domain.PaymentMethodBankTransfer,
	}).Return(&port.CheckoutResult{
		OrderID:  "tx-42",
		TicketID: "A1B2C3D4",
		PayURL:   "https://pay.example/tx-42",
		Amount:   "1499",
		Asset:    "RUB",
		PriceRUB: 1499,
	}, nil)

	r := newRouter(t, svc)
	w := do(r, http.MethodPost, "/api/orders",
		`{"buyer_id":7,"product_id":"course-go","method":"bank_transfer"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tx-42", resp["order_id"])
	assert.Equal(t, "https://pay.example/tx-42", resp["pay_url"])
}

func TestRouter_CreateCheckoutValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	r := newRouter(t, mock.NewMockService(mockCtrl))

	w := do(r, http.MethodPost, "/api/orders", `{"buyer_id":7}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_GetOrderNotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().GetOrder(gomock.Any(), "nope").Return(nil, domain.ErrDataNotFound)

	r := newRouter(t, svc)
	w := do(r, http.MethodGet, "/api/orders/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_StaffLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	r := newRouter(t, mock.NewMockService(mockCtrl))

	w := do(r, http.MethodPost, "/api/staff/login", `{"staff_id":"ops-1","key":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	staffToken(t, r)
}

func TestRouter_StaffOrdersRequireToken(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().ListOrdersByStatus(gomock.Any(), domain.OrderStatusPending).
		Return([]*domain.Order{
			{ID: "o1", Status: domain.OrderStatusPending, Method: domain.PaymentMethodCrypto},
		}, nil)

	r := newRouter(t, svc)

	w := do(r, http.MethodGet, "/api/staff/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/staff/orders", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := staffToken(t, r)
	w = do(r, http.MethodGet, "/api/staff/orders", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "o1", list[0]["order_id"])
}

func TestRouter_StaffRequeue(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().RequeueOrder(gomock.Any(), "o1").Return(nil)

	r := newRouter(t, svc)
	token := staffToken(t, r)

	w := do(r, http.MethodPost, "/api/staff/orders/o1/requeue", "", token)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRouter_SetReferrer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().SetReferrer(gomock.Any(), int64(7), int64(99)).Return(true, nil)

	r := newRouter(t, svc)
	w := do(r, http.MethodPost, "/api/users/7/referrer", `{"referrer_id":99}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["set"])
}
