// README: Quote service prices packages and records the quotes it issues.
package quote

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"shipcost/internal/modules/shipping"
)

var (
	ErrNotFound    = errors.New("quote not found")
	ErrUnavailable = errors.New("quote storage not configured")
	ErrBadRequest  = errors.New("bad request")
)

const (
	DefaultTTL          = 30 * time.Minute
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Cache keeps issued quotes until they expire.
type Cache interface {
	Save(ctx context.Context, q *Issued, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Issued, error)
}

// History is the durable log of issued quotes.
type History interface {
	Append(ctx context.Context, q *Issued) error
	ListByPostalCode(ctx context.Context, postalCode string, limit int) ([]Issued, error)
}

type Service struct {
	cache   Cache
	history History
	ttl     time.Duration
	now     func() time.Time
}

// NewService builds a Service. cache and history may be nil; pricing works
// without them.
func NewService(cache Cache, history History, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{cache: cache, history: history, ttl: ttl, now: time.Now}
}

type IssueCommand struct {
	PostalCode string
	Weight     float64
}

// Rate is the bare calculator, exposed so transports depend on one service.
func (s *Service) Rate(postalCode string, weight float64) float64 {
	return shipping.Calculate(postalCode, weight)
}

// Issue prices the package and stores the quote. Storage failures are logged
// and do not affect the returned price.
func (s *Service) Issue(ctx context.Context, cmd IssueCommand) (*Issued, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := shipping.Estimate(cmd.PostalCode, cmd.Weight)
	issued := newIssued(uuid.NewString(), q, s.now().UTC(), s.ttl)

	if s.cache != nil {
		if err := s.cache.Save(ctx, issued, s.ttl); err != nil {
			log.Printf("quote %s: cache save: %v", issued.ID, err)
		}
	}
	if s.history != nil {
		if err := s.history.Append(ctx, issued); err != nil {
			log.Printf("quote %s: history append: %v", issued.ID, err)
		}
	}
	return issued, nil
}

// Get returns an unexpired quote by ID.
func (s *Service) Get(ctx context.Context, id string) (*Issued, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBadRequest
	}
	if s.cache == nil {
		return nil, ErrUnavailable
	}
	q, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.ExpiresAt.IsZero() && !s.now().Before(q.ExpiresAt) {
		return nil, ErrNotFound
	}
	return q, nil
}

// History lists the most recent quotes for a postal code, newest first.
func (s *Service) History(ctx context.Context, postalCode string, limit int) ([]Issued, error) {
	if postalCode == "" {
		return nil, ErrBadRequest
	}
	if s.history == nil {
		return nil, ErrUnavailable
	}
	return s.history.ListByPostalCode(ctx, postalCode, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}
