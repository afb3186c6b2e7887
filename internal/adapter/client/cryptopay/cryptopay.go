// Package cryptopay is the crypto-invoice payment provider client.
// Prices arrive in RUB and are converted to the settlement asset through the
// rate cache before the invoice is created; the opaque payload travels with
// the invoice and comes back in the provider's paid-invoice push.
package cryptopay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akozyrev/storepay/internal/adapter/client/rates"
	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://pay.crypt.bot/api"

type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	token      string
	expiresIn  time.Duration
	rates      *rates.Cache
}

func NewClient(cfg *config.CryptoPay, log *zap.Logger) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		logger:     log,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      cfg.Token,
		expiresIn:  cfg.InvoiceExpiresIn,
	}
	c.rates = rates.NewCache(c.GetExchangeRates)

	return c, nil
}

type apiResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

type invoice struct {
	InvoiceID     int64  `json:"invoice_id"`
	Status        string `json:"status"`
	Asset         string `json:"asset"`
	Amount        string `json:"amount"`
	BotInvoiceURL string `json:"bot_invoice_url"`
	Payload       string `json:"payload"`
}

type invoiceList struct {
	Items []invoice `json:"items"`
}

func (c *Client) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentCreated, error) {
	amountRub, err := decimal.New(req.AmountRUB, 0)
	if err != nil {
		return nil, err
	}

	amount, err := c.rates.Convert(ctx, amountRub, "RUB", req.Asset)
	if err != nil {
		return nil, fmt.Errorf("converting %d RUB to %s: %w", req.AmountRUB, req.Asset, err)
	}
	amount = rates.Quantize(amount, req.Asset)

	params := url.Values{}
	params.Set("asset", req.Asset)
	params.Set("amount", amount.String())
	params.Set("description", req.Description)
	params.Set("payload", req.Payload)
	params.Set("expires_in", fmt.Sprintf("%d", int(c.expiresIn.Seconds())))

	raw, err := c.call(ctx, "createInvoice", params)
	if err != nil {
		return nil, err
	}

	var inv invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &domain.PaymentCreated{
		ProviderTxID: fmt.Sprintf("%d", inv.InvoiceID),
		PayURL:       inv.BotInvoiceURL,
		Amount:       inv.Amount,
		Asset:        inv.Asset,
	}, nil
}

func (c *Client) GetStatus(ctx context.Context, providerTxID string) (*domain.ProviderStatusResult, error) {
	params := url.Values{}
	params.Set("invoice_ids", providerTxID)

	raw, err := c.call(ctx, "getInvoices", params)
	if err != nil {
		return nil, err
	}

	var list invoiceList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	if len(list.Items) == 0 {
		return nil, fmt.Errorf("invoice %s: %w", providerTxID, domain.ErrDataNotFound)
	}

	return &domain.ProviderStatusResult{
		Status: mapStatus(list.Items[0].Status),
		Raw:    raw,
	}, nil
}

// GetExchangeRates feeds the rate cache.
func (c *Client) GetExchangeRates(ctx context.Context) ([]rates.ExchangeRate, error) {
	raw, err := c.call(ctx, "getExchangeRates", nil)
	if err != nil {
		return nil, err
	}

	var result []struct {
		Source  string `json:"source"`
		Target  string `json:"target"`
		Rate    string `json:"rate"`
		IsValid bool   `json:"is_valid"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	list := make([]rates.ExchangeRate, 0, len(result))
	for _, r := range result {
		if !r.IsValid {
			continue
		}
		rate, err := decimal.Parse(r.Rate)
		if err != nil {
			continue
		}
		list = append(list, rates.ExchangeRate{
			Source: strings.ToUpper(r.Source),
			Target: strings.ToUpper(r.Target),
			Rate:   rate,
		})
	}

	return list, nil
}

func (c *Client) call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + "/" + method
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s: %w", method, err)
	}
	req.Header.Set("Crypto-Pay-API-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !api.OK {
		c.logger.Error("provider request rejected",
			zap.String("method", method), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, method)
	}

	return api.Result, nil
}

func mapStatus(s string) domain.ProviderStatus {
	switch s {
	case "paid":
		return domain.ProviderStatusConfirmed
	case "expired":
		return domain.ProviderStatusCanceled
	default:
		return domain.ProviderStatusPending
	}
}
