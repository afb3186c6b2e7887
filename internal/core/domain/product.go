package domain

// Product is an entry of the external read-only catalog.
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	PriceRUB int64  `json:"price_rub"`
}

// Selection is the transient per-buyer checkout state: the promo and bonus
// amount chosen for a product before a payment method is picked. Amounts are
// captured here at selection time and reused verbatim at order creation.
type Selection struct {
	ProductID  string
	PromoCode  string
	Discount   int64
	BonusSpent int64
	FinalPrice int64
}

// Ticket is the support record created for every finalized order.
type Ticket struct {
	ID            string `json:"ticket_id"`
	ProductTitle  string `json:"product_title"`
	Amount        string `json:"amount"`
	Asset         string `json:"asset"`
	PriceRUB      int64  `json:"price_rub"`
	BuyerID       int64  `json:"buyer_id"`
	BuyerUsername string `json:"buyer_username,omitempty"`
	PromoCode     string `json:"promo_code,omitempty"`
	BonusSpent    int64  `json:"bonus_spent,omitempty"`
}
