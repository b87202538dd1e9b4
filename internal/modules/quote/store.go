// README: Quote history store backed by PostgreSQL.
package quote

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS shipping_quotes (
    id              UUID PRIMARY KEY,
    postal_code     TEXT        NOT NULL,
    fallback        BOOLEAN     NOT NULL,
    zone            SMALLINT    NOT NULL,
    billable_weight INTEGER     NOT NULL,
    tier_max_weight INTEGER     NOT NULL,
    base_rate       BIGINT      NOT NULL,
    handling_fee    BIGINT      NOT NULL,
    total           BIGINT      NOT NULL,
    currency        TEXT        NOT NULL,
    issued_at       TIMESTAMPTZ NOT NULL,
    expires_at      TIMESTAMPTZ NOT NULL
)`, `
CREATE INDEX IF NOT EXISTS shipping_quotes_postal_code_idx
    ON shipping_quotes (postal_code, issued_at DESC)`,
}

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema creates the quote table when it does not exist.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PGStore) Append(ctx context.Context, q *Issued) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO shipping_quotes (
            id, postal_code, fallback, zone, billable_weight, tier_max_weight,
            base_rate, handling_fee, total, currency, issued_at, expires_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		q.ID, q.PostalCode, q.Fallback, q.Zone, q.BillableWeight, q.TierMaxWeight,
		q.BaseRate, q.HandlingFee, q.Total, q.Currency, q.IssuedAt, q.ExpiresAt,
	)
	return err
}

func (s *PGStore) ListByPostalCode(ctx context.Context, postalCode string, limit int) ([]Issued, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id::text, postal_code, fallback, zone, billable_weight, tier_max_weight,
               base_rate, handling_fee, total, currency, issued_at, expires_at
        FROM shipping_quotes
        WHERE postal_code = $1
        ORDER BY issued_at DESC
        LIMIT $2`, postalCode, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Issued{}
	for rows.Next() {
		var q Issued
		if err := rows.Scan(
			&q.ID, &q.PostalCode, &q.Fallback, &q.Zone, &q.BillableWeight, &q.TierMaxWeight,
			&q.BaseRate, &q.HandlingFee, &q.Total, &q.Currency, &q.IssuedAt, &q.ExpiresAt,
		); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
