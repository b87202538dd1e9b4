// README: Shipping quote handlers (rate, issue, lookup, history, zone).
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shipcost/internal/modules/quote"
	"shipcost/internal/modules/shipping"
	"shipcost/internal/types"
)

type QuoteHandler struct {
	quote *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quote: svc}
}

type rateResponse struct {
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// issueQuoteReq accepts numbers and strings for both fields so that a body
// prices the same as the equivalent rate query.
type issueQuoteReq struct {
	PostalCode looseString `json:"postal_code"`
	Weight     looseWeight `json:"weight"`
}

var errNotScalar = errors.New("expected a string or number")

type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*s = looseString(b)
	default:
		return errNotScalar
	}
	return nil
}

type looseWeight float64

func (w *looseWeight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null" || string(b) == "false":
		*w = 0
	case string(b) == "true":
		*w = 1
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*w = looseWeight(shipping.ParseWeight(v))
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*w = looseWeight(shipping.ParseWeight(string(b)))
	default:
		return errNotScalar
	}
	return nil
}

type quoteResponse struct {
	ID             string    `json:"id"`
	PostalCode     string    `json:"postal_code"`
	Fallback       bool      `json:"fallback"`
	Zone           int       `json:"zone,omitempty"`
	BillableWeight int       `json:"billable_weight"`
	TierMaxWeight  int       `json:"tier_max_weight,omitempty"`
	BaseRate       float64   `json:"base_rate"`
	HandlingFee    float64   `json:"handling_fee"`
	Cost           float64   `json:"cost"`
	Currency       string    `json:"currency"`
	IssuedAt       time.Time `json:"issued_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func toQuoteResponse(q *quote.Issued) quoteResponse {
	return quoteResponse{
		ID:             q.ID,
		PostalCode:     q.PostalCode,
		Fallback:       q.Fallback,
		Zone:           q.Zone,
		BillableWeight: q.BillableWeight,
		TierMaxWeight:  q.TierMaxWeight,
		BaseRate:       types.USD(q.BaseRate).Dollars(),
		HandlingFee:    types.USD(q.HandlingFee).Dollars(),
		Cost:           q.TotalMoney().Dollars(),
		Currency:       q.Currency,
		IssuedAt:       q.IssuedAt,
		ExpiresAt:      q.ExpiresAt,
	}
}

// Rate answers GET /api/shipping/rate. It never rejects input: weights are
// coerced by shipping.ParseWeight and bad postal codes get the fallback rate.
func (h *QuoteHandler) Rate(c *gin.Context) {
	cost := h.quote.Rate(c.Query("postal_code"), shipping.ParseWeight(c.Query("weight")))
	writeJSON(c, http.StatusOK, rateResponse{Cost: cost, Currency: types.CurrencyUSD})
}

func (h *QuoteHandler) Issue(c *gin.Context) {
	var req issueQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	q, err := h.quote.Issue(c.Request.Context(), quote.IssueCommand{
		PostalCode: string(req.PostalCode),
		Weight:     float64(req.Weight),
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toQuoteResponse(q))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.quote.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toQuoteResponse(q))
}

func (h *QuoteHandler) History(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	list, err := h.quote.History(c.Request.Context(), c.Query("postal_code"), limit)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	out := make([]quoteResponse, 0, len(list))
	for i := range list {
		out = append(out, toQuoteResponse(&list[i]))
	}
	writeJSON(c, http.StatusOK, map[string]any{"quotes": out})
}

// Zone answers GET /api/shipping/zones/:prefix for a prefix of at least three digits.
func (h *QuoteHandler) Zone(c *gin.Context) {
	prefix := c.Param("prefix")
	if len(prefix) < 3 || !shipping.ValidPostalCode(prefix+"00") {
		writeError(c, http.StatusBadRequest, "prefix must be at least 3 digits")
		return
	}
	z := shipping.ResolveZone(prefix)
	writeJSON(c, http.StatusOK, map[string]any{
		"prefix": prefix[:3],
		"zone":   int(z),
		"name":   z.String(),
	})
}

type tierResponse struct {
	MaxWeight int       `json:"max_weight"`
	Rates     []float64 `json:"rates"`
}

// RateCard answers GET /api/shipping/tiers with every tier's per-zone rates.
func (h *QuoteHandler) RateCard(c *gin.Context) {
	tiers := shipping.Tiers()
	out := make([]tierResponse, 0, len(tiers))
	for _, t := range tiers {
		rates := make([]float64, len(t.Rates))
		for i, cents := range t.Rates {
			rates[i] = types.USD(cents).Dollars()
		}
		out = append(out, tierResponse{MaxWeight: t.MaxWeight, Rates: rates})
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"currency":           types.CurrencyUSD,
		"handling_fee":       types.USD(shipping.HandlingFee).Dollars(),
		"handling_threshold": shipping.HandlingThreshold,
		"fallback_rate":      types.USD(shipping.FallbackRate).Dollars(),
		"tiers":              out,
	})
}
