package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReport_GroupsByCategory(t *testing.T) {
	rp := newReport()
	rp.add(result{category: "storage", status: statusSkip})
	rp.add(result{category: "pricing", status: statusPass})
	rp.add(result{category: "pricing", status: statusFail})
	rp.add(result{category: "storage", status: statusPass})

	if got := strings.Join(rp.categories, ","); got != "storage,pricing" {
		t.Errorf("categories = %s", got)
	}
	if rp.counts["pricing"][statusPass] != 1 || rp.counts["pricing"][statusFail] != 1 {
		t.Errorf("pricing counts = %v", rp.counts["pricing"])
	}
	if rp.total[statusPass] != 2 || rp.total[statusSkip] != 1 {
		t.Errorf("totals = %v", rp.total)
	}

	var buf bytes.Buffer
	rp.print(&buf)
	if !strings.Contains(buf.String(), "total      PASS=2 FAIL=1 PENDING=0 SKIP=1") {
		t.Errorf("summary = %q", buf.String())
	}
}

func TestExpectStatus(t *testing.T) {
	tests := []struct {
		out  callOutcome
		want status
	}{
		{callOutcome{code: 200}, statusPass},
		{callOutcome{code: 503}, statusPending},
		{callOutcome{code: 500}, statusFail},
		{callOutcome{err: errors.New("refused")}, statusFail},
	}
	for _, tt := range tests {
		if got := expectStatus("quote", "x", tt.out, 200, 503).status; got != tt.want {
			t.Errorf("expectStatus(%+v) = %s, want %s", tt.out, got, tt.want)
		}
	}
	if got := expectStatus("quote", "x", callOutcome{code: 0}, 400, 0).status; got != statusFail {
		t.Errorf("zero pending status must not match, got %s", got)
	}
}

func TestConnResult(t *testing.T) {
	if s := connResult("storage", "redis", false, nil).status; s != statusSkip {
		t.Errorf("unconfigured = %s", s)
	}
	if s := connResult("storage", "redis", false, errors.New("down")).status; s != statusFail {
		t.Errorf("failed = %s", s)
	}
	if s := connResult("storage", "redis", true, nil).status; s != statusPass {
		t.Errorf("connected = %s", s)
	}
}
