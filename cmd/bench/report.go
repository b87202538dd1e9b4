package main

import (
	"fmt"
	"io"
)

type status string

const (
	statusPass    status = "PASS"
	statusFail    status = "FAIL"
	statusPending status = "PENDING"
	statusSkip    status = "SKIP"
)

var statusOrder = []status{statusPass, statusFail, statusPending, statusSkip}

type result struct {
	category string
	name     string
	status   status
	note     string
}

// report tallies results per category in the order categories first appear.
type report struct {
	categories []string
	counts     map[string]map[status]int
	total      map[status]int
}

func newReport() *report {
	return &report{counts: map[string]map[status]int{}, total: map[status]int{}}
}

func (rp *report) add(res result) {
	c, ok := rp.counts[res.category]
	if !ok {
		c = map[status]int{}
		rp.counts[res.category] = c
		rp.categories = append(rp.categories, res.category)
	}
	c[res.status]++
	rp.total[res.status]++
}

func (rp *report) print(w io.Writer) {
	fmt.Fprintln(w, "\n== Summary ==")
	for _, cat := range rp.categories {
		fmt.Fprintf(w, "%-10s", cat)
		for _, s := range statusOrder {
			fmt.Fprintf(w, " %s=%d", s, rp.counts[cat][s])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%-10s", "total")
	for _, s := range statusOrder {
		fmt.Fprintf(w, " %s=%d", s, rp.total[s])
	}
	fmt.Fprintln(w)
}
