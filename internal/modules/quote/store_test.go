package quote

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TestRedisCache_SaveGet(t *testing.T) {
	redisAddr := os.Getenv("SHIPCOST_REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("SHIPCOST_REDIS_ADDR not set; skipping integration test")
	}
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	ctx := context.Background()
	s := NewService(NewRedisCache(rdb), nil, time.Minute)
	q, err := s.Issue(ctx, IssueCommand{PostalCode: "97201", Weight: 5})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	defer rdb.Del(ctx, quoteKey(q.ID))

	ttl, err := rdb.TTL(ctx, quoteKey(q.ID)).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v (err %v)", ttl, err)
	}
	got, err := s.Get(ctx, q.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Total != 1295 || got.Zone != 1 {
		t.Errorf("unexpected cached quote: %+v", got)
	}
}

func TestPGStore_AppendList(t *testing.T) {
	dsn := os.Getenv("SHIPCOST_DB_DSN")
	if dsn == "" {
		t.Skip("SHIPCOST_DB_DSN not set; skipping integration test")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	store := NewPGStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	// A postal code unique to this run keeps parallel runs apart.
	code := fmt.Sprintf("9%09d", time.Now().UnixNano()%1_000_000_000)
	defer pool.Exec(ctx, `DELETE FROM shipping_quotes WHERE postal_code = $1`, code)

	s := NewService(nil, store, time.Minute)
	base := time.Now().UTC()
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	first, err := s.Issue(ctx, IssueCommand{PostalCode: code, Weight: 31})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Issue(ctx, IssueCommand{PostalCode: code, Weight: 2})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.History(ctx, code, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("history not newest first: %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].HandlingFee != 500 || got[1].Total != first.Total {
		t.Errorf("round-tripped quote mismatch: %+v", got[1])
	}
}
