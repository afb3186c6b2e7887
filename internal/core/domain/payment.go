package domain

import "encoding/json"

// ProviderStatus is the terminal-status vocabulary shared by both providers.
type ProviderStatus string

const (
	ProviderStatusPending    ProviderStatus = "PENDING"
	ProviderStatusConfirmed  ProviderStatus = "CONFIRMED"
	ProviderStatusCanceled   ProviderStatus = "CANCELED"
	ProviderStatusChargeback ProviderStatus = "CHARGEBACK"
)

// PaymentRequest asks a provider to produce a payable link or invoice.
// Amount is integer RUB; Asset names the settlement asset for crypto
// payments and is ignored by the bank-transfer provider.
type PaymentRequest struct {
	AmountRUB   int64
	Asset       string
	Description string
	Payload     string
}

// PaymentCreated is the provider's answer to a create request.
type PaymentCreated struct {
	ProviderTxID string
	PayURL       string
	// Amount and Asset as settled with the provider, e.g. "12.05" "TON".
	Amount string
	Asset  string
}

// ProviderStatusResult is one observation of a payment's state.
type ProviderStatusResult struct {
	Status ProviderStatus
	Raw    json.RawMessage
}
