package prediction

import "math"

// Outlook bands for display purposes.
const (
	OutlookPromising = "promising"
	OutlookModerate  = "moderate"
	OutlookRisky     = "risky"
)

type Signals struct {
	Users         int
	Revenue       float64
	GrowthPercent float64
	TeamSize      int
	FundingAmount float64
}

type Forecast struct {
	Score   float64
	Outlook string
	Drivers []string
}

// Predict runs the in-process success model: a fixed weighted blend of
// saturating traction, team and funding signals. Purely deterministic, no
// I/O.
func Predict(s Signals) Forecast {
	users := saturate(float64(s.Users), 10000)
	revenue := saturate(s.Revenue, 500000)
	growth := saturate(s.GrowthPercent, 40)
	team := saturate(float64(s.TeamSize), 12)
	funding := saturate(s.FundingAmount, 1000000)

	score := 30*users + 25*revenue + 20*growth + 15*team + 10*funding
	score = math.Round(score*10) / 10
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	drivers := make([]string, 0, 3)
	if users >= 0.5 {
		drivers = append(drivers, "meaningful user base")
	}
	if revenue >= 0.5 {
		drivers = append(drivers, "recurring revenue")
	}
	if growth >= 0.5 {
		drivers = append(drivers, "strong growth rate")
	}
	if team >= 0.5 {
		drivers = append(drivers, "established team")
	}

	return Forecast{Score: score, Outlook: outlookForScore(score), Drivers: drivers}
}

func outlookForScore(score float64) string {
	switch {
	case score >= 65:
		return OutlookPromising
	case score >= 35:
		return OutlookModerate
	default:
		return OutlookRisky
	}
}

// saturate maps v onto [0,1] with diminishing returns past the midpoint
// reference value.
func saturate(v, mid float64) float64 {
	if v <= 0 || mid <= 0 {
		return 0
	}
	return v / (v + mid)
}
