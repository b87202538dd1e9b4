package shipping

import (
	"math"
	"testing"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{" 2.5 ", 2.5},
		{"5lb", 5},
		{"12.5 pounds", 12.5},
		{".5kg", 0.5},
		{"3e1x", 30},
		{"-4", -4},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"1e400lb", math.Inf(1)},
		{"Inf", math.Inf(1)},
		{"NaN", 0},
		{"heavy", 0},
		{"", 0},
		{"lb5", 0},
	}
	for _, tt := range tests {
		if got := ParseWeight(tt.in); got != tt.want {
			t.Errorf("ParseWeight(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWeight_OverflowIsCapped(t *testing.T) {
	if got := Calculate("97201", ParseWeight("1e400")); got != Calculate("97201", MaxWeight) {
		t.Errorf("1e400 priced at %v, want the %d lb rate", got, MaxWeight)
	}
	if got := Calculate("97201", ParseWeight("5lb")); got != 12.95 {
		t.Errorf("5lb priced at %v, want 12.95", got)
	}
}
