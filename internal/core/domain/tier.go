package domain

import "math"

// PerformanceTier classifies the expected delivery quality of an ad set
// from the daily budget it receives.
type PerformanceTier string

const (
	TierNone        PerformanceTier = ""
	TierVeryLow     PerformanceTier = "VeryLow"
	TierLow         PerformanceTier = "Low"
	TierBest        PerformanceTier = "Best"
	TierInsane      PerformanceTier = "Insane"
	TierUntouchable PerformanceTier = "Untouchable"
)

// TierFor maps a per-ad-set budget onto a tier. Thresholds are evaluated
// from the highest down and the first match wins.
func TierFor(perAdSet float64) PerformanceTier {
	switch {
	case perAdSet >= 500:
		return TierUntouchable
	case perAdSet >= 200:
		return TierInsane
	case perAdSet >= 150:
		return TierBest
	case perAdSet >= 93:
		return TierLow
	case perAdSet > 0:
		return TierVeryLow
	default:
		return TierNone
	}
}

// Label is the human readable name shown next to the budget preview.
func (t PerformanceTier) Label() string {
	switch t {
	case TierUntouchable:
		return "Untouchable Performance"
	case TierInsane:
		return "Insane Performance"
	case TierBest:
		return "Best Performance"
	case TierLow:
		return "Low Performance"
	case TierVeryLow:
		return "Very Low Performance"
	default:
		return ""
	}
}

// Score is the baseline performance score used by the projection.
func (t PerformanceTier) Score() float64 {
	switch t {
	case TierUntouchable:
		return 95
	case TierInsane:
		return 85
	case TierBest:
		return 75
	case TierLow:
		return 45
	case TierVeryLow:
		return 25
	default:
		return 0
	}
}

// Advice is a one-line recommendation for the budget split.
func (t PerformanceTier) Advice() string {
	switch t {
	case TierUntouchable, TierInsane:
		return "Excellent budget allocation for maximum reach and engagement"
	case TierBest:
		return "Good budget allocation for solid performance"
	case TierLow:
		return "Moderate budget - consider increasing for better results"
	case TierVeryLow:
		return "Low budget per ad set - performance may be limited"
	default:
		return ""
	}
}

// Allocation is the result of splitting a daily budget across ad sets.
type Allocation struct {
	PerAdSet float64         `json:"per_ad_set"`
	Tier     PerformanceTier `json:"tier"`
}

// Allocate divides dailyBudget evenly across adSetCount ad sets and
// classifies the share. A non-positive count is treated as one ad set and
// a negative or non-finite budget as zero, so the division is always
// defined.
func Allocate(dailyBudget float64, adSetCount int) Allocation {
	if adSetCount <= 0 {
		adSetCount = 1
	}
	if dailyBudget < 0 || math.IsNaN(dailyBudget) || math.IsInf(dailyBudget, 0) {
		dailyBudget = 0
	}
	perAdSet := dailyBudget / float64(adSetCount)
	return Allocation{PerAdSet: perAdSet, Tier: TierFor(perAdSet)}
}

// ProjectionDays is the length of the performance projection.
const ProjectionDays = 7

// ProjectionPoint is one day of projected delivery.
type ProjectionPoint struct {
	Day         int     `json:"day"`
	Performance float64 `json:"performance"`
	Reach       float64 `json:"reach"`
	Clicks      float64 `json:"clicks"`
}

// Project builds a week of projected delivery around the tier score.
// jitter must return values in [0,1); it is called three times per day.
func Project(tier PerformanceTier, jitter func() float64) []ProjectionPoint {
	score := tier.Score()
	points := make([]ProjectionPoint, 0, ProjectionDays)
	for day := 1; day <= ProjectionDays; day++ {
		points = append(points, ProjectionPoint{
			Day:         day,
			Performance: score + jitter()*10 - 5,
			Reach:       score*100 + jitter()*500,
			Clicks:      score*10 + jitter()*50,
		})
	}
	return points
}

// SetupPreview is the live summary shown while the campaign is configured.
type SetupPreview struct {
	Allocation
	Label      string            `json:"label"`
	Advice     string            `json:"advice"`
	Projection []ProjectionPoint `json:"projection"`
}

// Preview combines the allocation of a draft with its projection.
func Preview(dailyBudget float64, adSetCount int, jitter func() float64) SetupPreview {
	a := Allocate(dailyBudget, adSetCount)
	return SetupPreview{
		Allocation: a,
		Label:      a.Tier.Label(),
		Advice:     a.Tier.Advice(),
		Projection: Project(a.Tier, jitter),
	}
}
