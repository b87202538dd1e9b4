// README: Issued quote record shared by the cache and history stores.
package quote

import (
	"time"

	"shipcost/internal/modules/shipping"
	"shipcost/internal/types"
)

// Issued is a priced quote handed to a caller. Amounts are cents.
type Issued struct {
	ID             string    `json:"id"`
	PostalCode     string    `json:"postal_code"`
	Fallback       bool      `json:"fallback"`
	Zone           int       `json:"zone"`
	BillableWeight int       `json:"billable_weight"`
	TierMaxWeight  int       `json:"tier_max_weight"`
	BaseRate       int64     `json:"base_rate"`
	HandlingFee    int64     `json:"handling_fee"`
	Total          int64     `json:"total"`
	Currency       string    `json:"currency"`
	IssuedAt       time.Time `json:"issued_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (i *Issued) TotalMoney() types.Money {
	return types.Money{Amount: i.Total, Currency: i.Currency}
}

func newIssued(id string, q shipping.Quote, now time.Time, ttl time.Duration) *Issued {
	return &Issued{
		ID:             id,
		PostalCode:     q.PostalCode,
		Fallback:       q.Fallback,
		Zone:           int(q.Zone),
		BillableWeight: q.BillableWeight,
		TierMaxWeight:  q.TierMaxWeight,
		BaseRate:       q.BaseRate.Amount,
		HandlingFee:    q.HandlingFee.Amount,
		Total:          q.Total.Amount,
		Currency:       q.Total.Currency,
		IssuedAt:       now,
		ExpiresAt:      now.Add(ttl),
	}
}
