// Package platega is the bank-transfer (SBP) payment provider client.
package platega

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/domain"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://app.platega.io"

// paymentMethodSBP selects the SBP rail on the provider side.
const paymentMethodSBP = 2

type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	merchantID string
	secret     string
	returnURL  string
	failedURL  string
}

func NewClient(cfg *config.Platega, log *zap.Logger) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		logger:     log,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		merchantID: cfg.MerchantID,
		secret:     cfg.Secret,
		returnURL:  cfg.ReturnURL,
		failedURL:  cfg.FailedURL,
	}, nil
}

type createRequest struct {
	PaymentMethod  int            `json:"paymentMethod"`
	PaymentDetails paymentDetails `json:"paymentDetails"`
	Description    string         `json:"description"`
	Return         string         `json:"return"`
	FailedURL      string         `json:"failedUrl"`
	Payload        string         `json:"payload"`
}

type paymentDetails struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createResponse struct {
	TransactionID string `json:"transactionId"`
	Redirect      string `json:"redirect"`
	Status        string `json:"status"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (c *Client) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentCreated, error) {
	body := createRequest{
		PaymentMethod:  paymentMethodSBP,
		PaymentDetails: paymentDetails{Amount: req.AmountRUB, Currency: "RUB"},
		Description:    req.Description,
		Return:         c.returnURL,
		FailedURL:      c.failedURL,
		Payload:        req.Payload,
	}

	raw, err := c.do(ctx, http.MethodPost, "/transaction/process", body)
	if err != nil {
		return nil, err
	}

	var resp createResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	if resp.TransactionID == "" {
		return nil, fmt.Errorf("create response without transactionId: %w", domain.ErrPaymentCreateFailed)
	}

	return &domain.PaymentCreated{
		ProviderTxID: resp.TransactionID,
		PayURL:       resp.Redirect,
		Amount:       fmt.Sprintf("%d", req.AmountRUB),
		Asset:        "RUB",
	}, nil
}

func (c *Client) GetStatus(ctx context.Context, providerTxID string) (*domain.ProviderStatusResult, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transaction/"+providerTxID, nil)
	if err != nil {
		return nil, err
	}

	var resp statusResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &domain.ProviderStatusResult{
		Status: mapStatus(resp.Status),
		Raw:    raw,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error on %s %s: %w", method, path, err)
	}
	req.Header.Set("X-MerchantId", c.merchantID)
	req.Header.Set("X-Secret", c.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Error("provider request rejected",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s %s", resp.StatusCode, method, path)
	}

	return raw, nil
}

func mapStatus(s string) domain.ProviderStatus {
	switch domain.ProviderStatus(s) {
	case domain.ProviderStatusConfirmed,
		domain.ProviderStatusCanceled,
		domain.ProviderStatusChargeback:
		return domain.ProviderStatus(s)
	default:
		return domain.ProviderStatusPending
	}
}
