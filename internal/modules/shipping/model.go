// README: Shipping zone, rate tier and quote definitions.
package shipping

import "shipcost/internal/types"

// Zone is a distance bucket from the origin warehouse, 1 (nearest) to 8.
type Zone int

const (
	ZoneLocal Zone = iota + 1
	ZoneWest
	ZoneCentralWest
	ZoneCentral
	ZoneCentralEast
	ZoneSoutheast
	ZoneMidAtlantic
	ZoneNortheast
)

const zoneCount = 8

// DefaultZone is used for prefixes missing from the table.
const DefaultZone = ZoneCentral

var zoneNames = [zoneCount]string{
	"local", "west", "central_west", "central", "central_east", "southeast", "mid_atlantic", "northeast",
}

func (z Zone) Valid() bool {
	return z >= ZoneLocal && z <= ZoneNortheast
}

func (z Zone) String() string {
	if !z.Valid() {
		return "unknown"
	}
	return zoneNames[z-1]
}

const (
	MinWeight         = 1
	MaxWeight         = 100
	HandlingThreshold = 30

	// FallbackRate is charged when the postal code cannot be priced.
	FallbackRate int64 = 1500
	HandlingFee  int64 = 500

	prefixLen     = 3
	postalCodeMin = 5
)

// Tier is one row of the rate card: packages up to MaxWeight pounds.
type Tier struct {
	MaxWeight int
	Rates     [zoneCount]int64
}

// Rate returns the tier price for z in cents.
func (t Tier) Rate(z Zone) int64 {
	if !z.Valid() {
		z = DefaultZone
	}
	return t.Rates[z-1]
}

type Quote struct {
	PostalCode     string
	Weight         float64
	Fallback       bool
	Prefix         string
	Zone           Zone
	BillableWeight int
	TierMaxWeight  int
	BaseRate       types.Money
	HandlingFee    types.Money
	Total          types.Money
}
