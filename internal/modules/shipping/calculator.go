// README: Domestic shipping calculator; postal code + weight to a USD price.
package shipping

import (
	"math"
	"sort"

	"shipcost/internal/types"
)

// Calculate returns the shipping cost in dollars, rounded to the cent.
// It never fails: bad postal codes price at the fallback rate and weights are
// normalised into the supported range.
func Calculate(postalCode string, weight float64) float64 {
	return Estimate(postalCode, weight).Total.Dollars()
}

// Estimate prices a package and returns every intermediate value.
func Estimate(postalCode string, weight float64) Quote {
	q := Quote{
		PostalCode:     postalCode,
		Weight:         weight,
		BillableWeight: BillableWeight(weight),
	}
	if !ValidPostalCode(postalCode) {
		q.Fallback = true
		q.Total = types.USD(FallbackRate)
		return q
	}

	q.Prefix = postalCode[:prefixLen]
	q.Zone = ResolveZone(postalCode)

	tier := ResolveTier(q.BillableWeight)
	q.TierMaxWeight = tier.MaxWeight
	q.BaseRate = types.USD(tier.Rate(q.Zone))
	q.HandlingFee = types.USD(0)
	if q.BillableWeight > HandlingThreshold {
		q.HandlingFee = types.USD(HandlingFee)
	}
	q.Total = q.BaseRate.Add(q.HandlingFee)
	return q
}

// ValidPostalCode reports whether code is at least five ASCII digits.
func ValidPostalCode(code string) bool {
	if len(code) < postalCodeMin {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// EffectiveWeight rounds weight up to a whole pound with a floor of one.
// NaN counts as zero.
func EffectiveWeight(weight float64) float64 {
	if math.IsNaN(weight) {
		return MinWeight
	}
	return math.Max(MinWeight, math.Ceil(weight))
}

// BillableWeight is EffectiveWeight capped at MaxWeight.
func BillableWeight(weight float64) int {
	w := EffectiveWeight(weight)
	if w > MaxWeight {
		return MaxWeight
	}
	return int(w)
}

// ResolveZone maps a postal code to its zone by three-digit prefix.
func ResolveZone(postalCode string) Zone {
	if len(postalCode) < prefixLen {
		return DefaultZone
	}
	if z, ok := zoneByPrefix[postalCode[:prefixLen]]; ok {
		return z
	}
	return DefaultZone
}

// ResolveTier returns the first tier whose MaxWeight covers weight, or the
// heaviest tier when none does.
func ResolveTier(weight int) Tier {
	i := sort.Search(len(rateTiers), func(i int) bool {
		return rateTiers[i].MaxWeight >= weight
	})
	if i == len(rateTiers) {
		return rateTiers[len(rateTiers)-1]
	}
	return rateTiers[i]
}

// BaseRate is the rate card price for a billable weight and zone, before fees.
func BaseRate(weight int, zone Zone) types.Money {
	return types.USD(ResolveTier(weight).Rate(zone))
}

// Tiers returns a copy of the rate card.
func Tiers() []Tier {
	out := make([]Tier, len(rateTiers))
	copy(out, rateTiers)
	return out
}
