// README: Command-line quote; prints the shipping cost for a postal code and weight.
package main

import (
	"flag"
	"fmt"
	"os"

	"shipcost/internal/modules/shipping"
)

func main() {
	zip := flag.String("zip", "", "destination postal code")
	weightArg := flag.String("weight", "1", "package weight in pounds")
	verbose := flag.Bool("v", false, "print the price breakdown")
	flag.Parse()

	q := shipping.Estimate(*zip, shipping.ParseWeight(*weightArg))
	if !*verbose {
		fmt.Printf("%.2f\n", q.Total.Dollars())
		return
	}
	printBreakdown(q)
}

func printBreakdown(q shipping.Quote) {
	w := os.Stdout
	if q.Fallback {
		fmt.Fprintf(w, "postal code %q not priceable; flat rate\n", q.PostalCode)
		fmt.Fprintf(w, "total:    %s\n", q.Total)
		return
	}
	fmt.Fprintf(w, "prefix:   %s\n", q.Prefix)
	fmt.Fprintf(w, "zone:     %d (%s)\n", q.Zone, q.Zone)
	fmt.Fprintf(w, "weight:   %d lb (tier <= %d lb)\n", q.BillableWeight, q.TierMaxWeight)
	fmt.Fprintf(w, "base:     %s\n", q.BaseRate)
	fmt.Fprintf(w, "handling: %s\n", q.HandlingFee)
	fmt.Fprintf(w, "total:    %s\n", q.Total)
}
