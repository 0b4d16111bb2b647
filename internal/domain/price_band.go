package domain

// PriceBand is a fixed hourly-rate range used by the directory filter.
type PriceBand string

const (
	PriceBandAll        PriceBand = "all"
	PriceBandUnder2000  PriceBand = "under_2000"
	PriceBand2000To2500 PriceBand = "2000_2500"
	PriceBand2500To3000 PriceBand = "2500_3000"
	PriceBandOver3000   PriceBand = "over_3000"
)

const (
	priceThresholdLow  = 2000.0
	priceThresholdMid  = 2500.0
	priceThresholdHigh = 3000.0
)

// PriceBandInfo describes a band for clients building a selector.
type PriceBandInfo struct {
	Band  PriceBand `json:"band"`
	Label string    `json:"label"`
}

// PriceBands lists the selectable bands in display order, "all" first.
func PriceBands() []PriceBandInfo {
	return []PriceBandInfo{
		{Band: PriceBandAll, Label: "All budgets"},
		{Band: PriceBandUnder2000, Label: "Under 2,000 THB/hr"},
		{Band: PriceBand2000To2500, Label: "2,000 - 2,500 THB/hr"},
		{Band: PriceBand2500To3000, Label: "2,500 - 3,000 THB/hr"},
		{Band: PriceBandOver3000, Label: "Over 3,000 THB/hr"},
	}
}

// IsValid reports whether b is a known band. The empty band counts as "all".
func (b PriceBand) IsValid() bool {
	switch b {
	case "", PriceBandAll, PriceBandUnder2000, PriceBand2000To2500, PriceBand2500To3000, PriceBandOver3000:
		return true
	default:
		return false
	}
}

// Contains reports whether rate falls in the band. The four concrete bands
// partition the non-negative rates: [0,2000) [2000,2500] (2500,3000] (3000,inf).
// "all", empty and unknown bands contain every rate.
func (b PriceBand) Contains(rate float64) bool {
	switch b {
	case PriceBandUnder2000:
		return rate < priceThresholdLow
	case PriceBand2000To2500:
		return rate >= priceThresholdLow && rate <= priceThresholdMid
	case PriceBand2500To3000:
		return rate > priceThresholdMid && rate <= priceThresholdHigh
	case PriceBandOver3000:
		return rate > priceThresholdHigh
	default:
		return true
	}
}
