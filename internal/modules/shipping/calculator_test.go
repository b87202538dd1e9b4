package shipping

import (
	"math"
	"testing"
)

// zoneSamples holds one real postal code per zone.
var zoneSamples = map[Zone]string{
	ZoneLocal: "97201", ZoneWest: "90210", ZoneCentralWest: "80202", ZoneCentral: "50301",
	ZoneCentralEast: "60601", ZoneSoutheast: "30301", ZoneMidAtlantic: "40202", ZoneNortheast: "10001",
}

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		postalCode string
		weight     float64
		want       float64
	}{
		{"Portland 5lb (zone 1, tier 5)", "97201", 5, 12.95},
		{"Manhattan 35lb (zone 8, tier 35, handling)", "10001", 35, 82.95},
		{"empty postal code", "", 10, 15.00},
		{"letters", "abcde", 10, 15.00},
		{"too short", "9720", 10, 15.00},
		{"zip+4 with hyphen", "97201-1234", 10, 15.00},
		{"leading whitespace", " 97201", 10, 15.00},
		{"half pound rounds up to 1lb (zone 4)", "50301", 0.5, 11.95},
		{"over cap clamps to 100lb (zone 2)", "90210", 200, 122.95},
		{"exactly 30lb has no handling fee", "97201", 30, 33.95},
		{"30.1lb bills as 31 with handling", "97201", 30.1, 38.95 + 5},
		{"unmapped prefix defaults to zone 4", "00501", 1, 11.95},
		{"leading zeros are significant", "01001", 1, 15.95},
		{"zero weight", "97201", 0, 8.95},
		{"negative weight", "97201", -12, 8.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.postalCode, tt.weight)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Calculate(%q, %v) = %v, want %v", tt.postalCode, tt.weight, got, tt.want)
			}
		})
	}
}

func TestEstimate_Breakdown(t *testing.T) {
	q := Estimate("10001", 35)
	if q.Fallback {
		t.Fatal("expected priced quote")
	}
	if q.Prefix != "100" || q.Zone != ZoneNortheast {
		t.Errorf("prefix/zone = %q/%v, want 100/northeast", q.Prefix, q.Zone)
	}
	if q.BillableWeight != 35 || q.TierMaxWeight != 35 {
		t.Errorf("weight/tier = %d/%d, want 35/35", q.BillableWeight, q.TierMaxWeight)
	}
	if q.BaseRate.Amount != 7795 || q.HandlingFee.Amount != HandlingFee || q.Total.Amount != 8295 {
		t.Errorf("unexpected amounts: base=%v fee=%v total=%v", q.BaseRate, q.HandlingFee, q.Total)
	}

	fb := Estimate("abc", 3)
	if !fb.Fallback || fb.Total.Amount != FallbackRate || fb.Zone != 0 {
		t.Errorf("fallback quote = %+v", fb)
	}
}

func TestEffectiveWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 1},
		{0, 1},
		{0.01, 1},
		{1, 1},
		{1.0001, 2},
		{2.5, 3},
		{99.2, 100},
		{150, 150},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
	}
	for _, tt := range tests {
		if got := EffectiveWeight(tt.in); got != tt.want {
			t.Errorf("EffectiveWeight(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBillableWeight_Cap(t *testing.T) {
	if got := BillableWeight(150); got != MaxWeight {
		t.Errorf("BillableWeight(150) = %d", got)
	}
	if got := BillableWeight(math.Inf(1)); got != MaxWeight {
		t.Errorf("BillableWeight(+Inf) = %d", got)
	}
	for _, code := range []string{"97201", "10001", "50301", "00501"} {
		if Calculate(code, 150) != Calculate(code, 100) {
			t.Errorf("%s: 150lb and 100lb should price the same", code)
		}
	}
}

func TestValidPostalCode(t *testing.T) {
	valid := []string{"97201", "00000", "123456789"}
	invalid := []string{"", "1234", "abcde", "1234a", "12 345", "1e5xx", "12.34", "９７２０１"}
	for _, c := range valid {
		if !ValidPostalCode(c) {
			t.Errorf("ValidPostalCode(%q) = false", c)
		}
	}
	for _, c := range invalid {
		if ValidPostalCode(c) {
			t.Errorf("ValidPostalCode(%q) = true", c)
		}
		if got := Calculate(c, 42); got != 15.00 {
			t.Errorf("Calculate(%q) = %v, want fallback", c, got)
		}
	}
}

func TestResolveZone(t *testing.T) {
	tests := []struct {
		code string
		want Zone
	}{
		{"97201", ZoneLocal},
		{"90210", ZoneWest},
		{"59001", ZoneWest},
		{"80202", ZoneCentralWest},
		{"50301", ZoneCentral},
		{"60601", ZoneCentralEast},
		{"30301", ZoneSoutheast},
		{"40202", ZoneMidAtlantic},
		{"10001", ZoneNortheast},
		{"00501", DefaultZone},
		{"99999", DefaultZone},
		{"21301", DefaultZone},
	}
	for _, tt := range tests {
		if got := ResolveZone(tt.code); got != tt.want {
			t.Errorf("ResolveZone(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestZoneTable_Integrity(t *testing.T) {
	for prefix, z := range zoneByPrefix {
		if len(prefix) != prefixLen || !ValidPostalCode(prefix+"00") {
			t.Errorf("bad prefix key %q", prefix)
		}
		if !z.Valid() {
			t.Errorf("prefix %q maps to invalid zone %d", prefix, z)
		}
	}
}

func TestRateTiers_Invariants(t *testing.T) {
	want := []int{1, 2, 3, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100}
	tiers := Tiers()
	if len(tiers) != len(want) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(want))
	}
	for i, tier := range tiers {
		if tier.MaxWeight != want[i] {
			t.Errorf("tier %d MaxWeight = %d, want %d", i, tier.MaxWeight, want[i])
		}
		for z := 1; z < zoneCount; z++ {
			if tier.Rates[z] < tier.Rates[z-1] {
				t.Errorf("tier %d: zone %d cheaper than zone %d", tier.MaxWeight, z+1, z)
			}
		}
		if i > 0 {
			for z := 0; z < zoneCount; z++ {
				if tier.Rates[z] < tiers[i-1].Rates[z] {
					t.Errorf("zone %d: tier %d cheaper than tier %d", z+1, tier.MaxWeight, tiers[i-1].MaxWeight)
				}
			}
		}
	}
	if tiers[len(tiers)-1].MaxWeight != MaxWeight {
		t.Errorf("heaviest tier must equal MaxWeight")
	}
}

func TestTiers_ReturnsCopy(t *testing.T) {
	tiers := Tiers()
	tiers[0].Rates[0] = 0
	if rateTiers[0].Rates[0] == 0 {
		t.Fatal("Tiers() exposed the rate card")
	}
}

func TestResolveTier(t *testing.T) {
	tests := []struct {
		weight int
		want   int
	}{
		{1, 1}, {2, 2}, {3, 3}, {4, 5}, {5, 5}, {6, 10}, {31, 35}, {35, 35},
		{51, 60}, {99, 100}, {100, 100}, {101, 100}, {0, 1},
	}
	for _, tt := range tests {
		if got := ResolveTier(tt.weight).MaxWeight; got != tt.want {
			t.Errorf("ResolveTier(%d) = %d, want %d", tt.weight, got, tt.want)
		}
	}
}

func TestMonotonic_AcrossWeightAndZone(t *testing.T) {
	for z := ZoneLocal; z <= ZoneNortheast; z++ {
		prev := 0.0
		for w := 1; w <= 120; w++ {
			got := Calculate(zoneSamples[z], float64(w))
			if got < prev {
				t.Fatalf("zone %v: cost dropped at %dlb (%v < %v)", z, w, got, prev)
			}
			prev = got
		}
	}
	for w := 1; w <= MaxWeight; w++ {
		prev := 0.0
		for z := ZoneLocal; z <= ZoneNortheast; z++ {
			got := Calculate(zoneSamples[z], float64(w))
			if got < prev {
				t.Fatalf("%dlb: zone %v cheaper than previous zone", w, z)
			}
			prev = got
		}
	}
}

func TestHandlingFee_StrictlyAboveThreshold(t *testing.T) {
	for z, code := range zoneSamples {
		if fee := Estimate(code, 30).HandlingFee.Amount; fee != 0 {
			t.Errorf("zone %v: 30lb charged handling fee %d", z, fee)
		}
		q := Estimate(code, 31)
		if diff := q.Total.Amount - BaseRate(31, z).Amount; diff != HandlingFee {
			t.Errorf("zone %v: 31lb total minus base = %d, want %d", z, diff, HandlingFee)
		}
	}
}

func TestZone_String(t *testing.T) {
	if ZoneCentral.String() != "central" || Zone(0).String() != "unknown" || Zone(9).String() != "unknown" {
		t.Error("unexpected zone names")
	}
}
