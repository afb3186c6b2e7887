package domain

import (
	"time"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCrypto       PaymentMethod = "crypto"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusExpired OrderStatus = "expired"
)

// Order is a single payment attempt for one product by one buyer.
// For bank-transfer payments ID is the provider-issued transaction id;
// for crypto payments it is generated by us and ProviderTxID holds the
// invoice id issued by the provider.
type Order struct {
	ID            string
	ProviderTxID  string
	TicketID      string
	BuyerID       int64
	BuyerUsername string
	ProductID     string
	PromoCode     string
	BonusSpent    int64
	FinalPrice    int64
	Method        PaymentMethod
	Status        OrderStatus
	CreatedAt     time.Time
}

// PendingOrder is the denormalized projection of an order kept in the
// pending-order cache, keyed by provider transaction id. It carries enough
// to run finalization without a store read.
type PendingOrder struct {
	OrderID       string        `json:"order_id"`
	TicketID      string        `json:"ticket_id"`
	BuyerID       int64         `json:"buyer_id"`
	BuyerUsername string        `json:"buyer_username,omitempty"`
	ProductID     string        `json:"product_id"`
	PromoCode     string        `json:"promo_code,omitempty"`
	BonusSpent    int64         `json:"bonus_spent"`
	FinalPrice    int64         `json:"final_price_rub"`
	Method        PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}
