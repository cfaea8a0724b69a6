package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DefaultLocation is used when neither the draft nor the business profile
// names a location.
const DefaultLocation = "Global"

// DefaultScheduleDays is the run length applied when a draft has no end date.
const DefaultScheduleDays = 30

// DefaultPlacements is the static placement policy of generated ad sets.
var DefaultPlacements = []string{"Facebook Feed", "Instagram Feed", "Instagram Stories"}

// Schedule is the delivery window of an ad set.
type Schedule struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// AdSet is one budget and targeting unit of a campaign. Only Location may
// change after generation.
type AdSet struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Budget     float64  `json:"budget"`
	Location   string   `json:"location"`
	Audience   string   `json:"audience"`
	Placements []string `json:"placements"`
	Schedule   Schedule `json:"schedule"`
}

// AudienceFor returns the audience assigned to the ad set at ordinal
// (1-based) position.
func AudienceFor(ordinal int) string {
	switch ordinal {
	case 1:
		return "Broad Audience"
	case 2:
		return "Lookalike Audience"
	default:
		return fmt.Sprintf("Custom Audience %d", ordinal-2)
	}
}

// GenerateAdSets materialises one ad set per unit of draft.AdSetCount.
// The output depends only on its inputs; calling it again yields the same
// list, ids included.
func GenerateAdSets(draft CampaignDraft, profile BusinessProfile) []AdSet {
	n := draft.AdSetCount
	if n <= 0 {
		n = 1
	}
	budget := Allocate(draft.DailyBudget, n).PerAdSet
	location := firstNonEmpty(draft.Location, profile.Location, DefaultLocation)
	schedule := Schedule{Start: draft.StartDate, End: draft.EndDate}
	if schedule.End.IsZero() {
		schedule.End = schedule.Start.AddDate(0, 0, DefaultScheduleDays)
	}

	adSets := make([]AdSet, 0, n)
	for i := 1; i <= n; i++ {
		adSets = append(adSets, AdSet{
			ID:         fmt.Sprintf("adset-%d", i),
			Name:       fmt.Sprintf("%s - Ad Set %d", draft.Name, i),
			Budget:     budget,
			Location:   location,
			Audience:   AudienceFor(i),
			Placements: slices.Clone(DefaultPlacements),
			Schedule:   schedule,
		})
	}
	return adSets
}

// SetLocation returns a copy of adSets with the location of the ad set
// identified by id replaced. An unknown id returns an unchanged copy and
// false.
func SetLocation(adSets []AdSet, id, location string) ([]AdSet, bool) {
	out := make([]AdSet, len(adSets))
	copy(out, adSets)
	for i := range out {
		if out[i].ID == id {
			out[i].Location = location
			return out, true
		}
	}
	return out, false
}

// TotalBudget sums the daily budget of every ad set.
func TotalBudget(adSets []AdSet) float64 {
	var total float64
	for _, a := range adSets {
		total += a.Budget
	}
	return total
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
