// README: Bench checks: storage, pricing parity with the calculator, issued-quote flow, throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"shipcost/internal/config"
	"shipcost/internal/infra"
	"shipcost/internal/modules/shipping"
)

type runner struct {
	flags benchFlags
	httpc *http.Client

	db       *pgxpool.Pool
	dbErr    error
	redis    *redis.Client
	redisErr error

	// issuedID links the issue check to the lookup check.
	issuedID string
}

func newRunner(f benchFlags) *runner {
	return &runner{flags: f, httpc: &http.Client{Timeout: 10 * time.Second}}
}

// connect opens whichever stores are configured; a failure is reported by
// the storage checks rather than aborting the run.
func (r *runner) connect(ctx context.Context, cfg config.Config) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if cfg.DB.DSN != "" {
		r.db, r.dbErr = infra.NewDB(ctx, cfg.DB.DSN)
	}
	if cfg.Redis.Addr != "" {
		r.redis, r.redisErr = infra.NewRedis(ctx, cfg.Redis.Addr)
	}
}

func (r *runner) close() {
	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
}

func (r *runner) run(ctx context.Context) *report {
	rp := newReport()
	emit := func(res result) {
		rp.add(res)
		line := fmt.Sprintf("%-7s [%s] %s", res.status, res.category, res.name)
		if res.note != "" {
			line += " - " + res.note
		}
		fmt.Println(line)
	}

	r.storageChecks(ctx, emit)
	r.pricingChecks(ctx, emit)
	r.quoteChecks(ctx, emit)
	r.throughputCheck(ctx, emit)
	return rp
}

func (r *runner) storageChecks(ctx context.Context, emit func(result)) {
	const cat = "storage"
	emit(connResult(cat, "postgres", r.db != nil, r.dbErr))
	emit(connResult(cat, "redis", r.redis != nil, r.redisErr))

	res := result{category: cat, name: "shipping_quotes table"}
	switch {
	case r.db == nil:
		res.status, res.note = statusSkip, "postgres unavailable"
	default:
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
			"shipping_quotes",
		).Scan(&exists)
		switch {
		case err != nil:
			res.status, res.note = statusFail, err.Error()
		case !exists:
			res.status, res.note = statusPending, "created on first API start"
		default:
			res.status = statusPass
		}
	}
	emit(res)
}

func connResult(cat, name string, ok bool, err error) result {
	res := result{category: cat, name: name + " connect"}
	switch {
	case err != nil:
		res.status, res.note = statusFail, err.Error()
	case !ok:
		res.status, res.note = statusSkip, "not configured"
	default:
		res.status = statusPass
	}
	return res
}

// pricingCases are raw query values; the expected cost is whatever the
// calculator returns for the same coerced input.
var pricingCases = []struct{ postalCode, weight string }{
	{"97201", "5"},
	{"10001", "35"},
	{"", "10"},
	{"abcde", "10"},
	{"97201-1234", "10"},
	{"50301", "0.5"},
	{"90210", "200"},
	{"97201", "30"},
	{"97201", "31"},
	{"00501", "1"},
	{"97201", "5lb"},
	{"97201", "1e400"},
	{"97201", "heavy"},
}

// zoneSamples covers every zone for the parity sweep.
var zoneSamples = []string{"97201", "90210", "80202", "50301", "60601", "30301", "40202", "10001"}

func (r *runner) pricingChecks(ctx context.Context, emit func(result)) {
	for _, pc := range pricingCases {
		want := shipping.Calculate(pc.postalCode, shipping.ParseWeight(pc.weight))
		res := r.checkRate(ctx, pc.postalCode, pc.weight, want)
		res.name = fmt.Sprintf("%q %s -> %.2f", pc.postalCode, pc.weight, want)
		emit(res)
	}

	// Sweep every tier boundary in every zone and report one line.
	sweep := result{category: "pricing", name: "tier x zone sweep", status: statusPass}
	checked := 0
	for _, code := range zoneSamples {
		for _, tier := range shipping.Tiers() {
			w := strconv.Itoa(tier.MaxWeight)
			want := shipping.Calculate(code, float64(tier.MaxWeight))
			if res := r.checkRate(ctx, code, w, want); res.status != statusPass {
				sweep.status = statusFail
				sweep.note = fmt.Sprintf("%s %slb: %s", code, w, res.note)
				break
			}
			checked++
		}
		if sweep.status == statusFail {
			break
		}
	}
	if sweep.status == statusPass {
		sweep.note = fmt.Sprintf("%d prices match", checked)
	}
	emit(sweep)
}

func (r *runner) checkRate(ctx context.Context, postalCode, weight string, want float64) result {
	q := url.Values{}
	q.Set("postal_code", postalCode)
	q.Set("weight", weight)
	var out struct {
		Cost float64 `json:"cost"`
	}
	res := result{category: "pricing"}
	code, err := r.call(ctx, http.MethodGet, "/api/shipping/rate?"+q.Encode(), nil, &out)
	switch {
	case err != nil:
		res.status, res.note = statusFail, err.Error()
	case code != http.StatusOK || out.Cost != want:
		res.status, res.note = statusFail, fmt.Sprintf("status=%d cost=%v", code, out.Cost)
	default:
		res.status = statusPass
	}
	return res
}

func (r *runner) quoteChecks(ctx context.Context, emit func(result)) {
	const cat = "quote"

	issue := result{category: cat, name: "issue 10001 35lb"}
	var issued struct {
		ID   string  `json:"id"`
		Cost float64 `json:"cost"`
	}
	want := shipping.Calculate("10001", 35)
	code, err := r.call(ctx, http.MethodPost, "/api/shipping/quotes",
		map[string]any{"postal_code": "10001", "weight": 35}, &issued)
	switch {
	case err != nil:
		issue.status, issue.note = statusFail, err.Error()
	case code != http.StatusCreated || issued.Cost != want:
		issue.status, issue.note = statusFail, fmt.Sprintf("status=%d cost=%v", code, issued.Cost)
	default:
		issue.status, issue.note = statusPass, "id="+issued.ID
		r.issuedID = issued.ID
	}
	emit(issue)

	lookup := result{category: cat, name: "lookup issued quote"}
	if r.issuedID == "" {
		lookup.status, lookup.note = statusSkip, "nothing issued"
	} else {
		lookup = expectStatus(cat, lookup.name, r.callStatus(ctx, http.MethodGet, "/api/shipping/quotes/"+r.issuedID, nil),
			http.StatusOK, http.StatusServiceUnavailable)
	}
	emit(lookup)

	emit(expectStatus(cat, "history for 10001",
		r.callStatus(ctx, http.MethodGet, "/api/shipping/quotes?postal_code=10001&limit=5", nil),
		http.StatusOK, http.StatusServiceUnavailable))
	emit(expectStatus(cat, "non-object body -> 400",
		r.callStatus(ctx, http.MethodPost, "/api/shipping/quotes", "not-an-object"),
		http.StatusBadRequest, 0))
}

type callOutcome struct {
	code int
	err  error
}

func (r *runner) callStatus(ctx context.Context, method, path string, body any) callOutcome {
	code, err := r.call(ctx, method, path, body, nil)
	return callOutcome{code: code, err: err}
}

// expectStatus passes on ok and marks pending, which signals a store the
// server runs without, as not yet verifiable.
func expectStatus(cat, name string, out callOutcome, ok, pending int) result {
	res := result{category: cat, name: name, note: fmt.Sprintf("status=%d", out.code)}
	switch {
	case out.err != nil:
		res.status, res.note = statusFail, out.err.Error()
	case out.code == ok:
		res.status = statusPass
	case pending != 0 && out.code == pending:
		res.status = statusPending
	default:
		res.status = statusFail
	}
	return res
}

// call sends body as JSON and decodes a 2xx response into out.
func (r *runner) call(ctx context.Context, method, path string, body, out any) (int, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, r.flags.baseURL+path, &payload)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// throughputCheck sends a fixed number of rate requests across a worker pool
// and reports throughput with median and tail latency.
func (r *runner) throughputCheck(ctx context.Context, emit func(result)) {
	res := result{category: "perf", name: fmt.Sprintf("rate x%d", r.flags.requests)}

	jobs := make(chan string)
	var (
		mu        sync.Mutex
		latencies []time.Duration
		failed    int
		wg        sync.WaitGroup
	)
	for i := 0; i < r.flags.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				start := time.Now()
				code, err := r.call(ctx, http.MethodGet, path, nil, nil)
				d := time.Since(start)
				mu.Lock()
				if err != nil || code != http.StatusOK {
					failed++
				} else {
					latencies = append(latencies, d)
				}
				mu.Unlock()
			}
		}()
	}

	start := time.Now()
feed:
	for i := 0; i < r.flags.requests; i++ {
		path := fmt.Sprintf("/api/shipping/rate?postal_code=%s&weight=%d",
			zoneSamples[i%len(zoneSamples)], i%shipping.MaxWeight+1)
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	if len(latencies) == 0 {
		res.status, res.note = statusFail, fmt.Sprintf("no successful requests (%d failed)", failed)
		emit(res)
		return
	}
	slices.Sort(latencies)
	res.status = statusPass
	res.note = fmt.Sprintf("rps=%.1f p50=%s p95=%s errors=%d",
		float64(len(latencies))/elapsed.Seconds(),
		latencies[len(latencies)/2], latencies[len(latencies)*95/100], failed)
	emit(res)
}
