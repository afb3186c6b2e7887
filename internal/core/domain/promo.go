package domain

import "time"

type PromoType string

const (
	PromoTypePercent PromoType = "percent"
	PromoTypeFixed   PromoType = "fixed"
)

type Promo struct {
	Code            string
	Type            PromoType
	Value           int64
	Active          bool
	ExpiresAt       *time.Time
	MaxUses         *int64
	PerUserLimit    *int64
	AllowedProducts []string
}

// PromoUsage aggregates recorded redemptions of one code.
type PromoUsage struct {
	TotalUses int64
	ByUser    map[int64]int64
}

// PromoApplied is the outcome of applying a code to a product price.
type PromoApplied struct {
	Code          string
	OriginalPrice int64
	Discount      int64
	FinalPrice    int64
}

// AppliesTo reports whether the code may be used for the given product.
func (p *Promo) AppliesTo(productID string) bool {
	if p.AllowedProducts == nil {
		return true
	}
	for _, id := range p.AllowedProducts {
		if id == productID {
			return true
		}
	}
	return false
}
