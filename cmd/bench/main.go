// README: Smoke/benchmark runner; checks a running shipcost API against the in-process calculator.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"shipcost/internal/config"
)

type benchFlags struct {
	baseURL     string
	strict      bool
	timeout     time.Duration
	concurrency int
	requests    int
}

func main() {
	var f benchFlags
	flag.StringVar(&f.baseURL, "base-url", "http://localhost:8080", "API base URL")
	flag.BoolVar(&f.strict, "strict", false, "treat pending checks as failures")
	flag.DurationVar(&f.timeout, "timeout", time.Minute, "total timeout")
	flag.IntVar(&f.concurrency, "concurrency", 20, "workers for the throughput check")
	flag.IntVar(&f.requests, "requests", 2000, "requests for the throughput check")
	flag.Parse()
	f.baseURL = strings.TrimRight(f.baseURL, "/")

	// Storage settings come from the same environment as the API server.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	r := newRunner(f)
	r.connect(ctx, cfg)
	defer r.close()

	report := r.run(ctx)
	report.print(os.Stdout)

	if report.total[statusFail] > 0 || (f.strict && report.total[statusPending] > 0) {
		os.Exit(1)
	}
}
