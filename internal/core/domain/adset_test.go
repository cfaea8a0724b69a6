package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdSets(t *testing.T) {
	draft := validDraft()
	draft.AdSetCount = 4
	adSets := GenerateAdSets(draft, BusinessProfile{Location: "Delhi"})

	require.Len(t, adSets, 4)
	want := []string{"Broad Audience", "Lookalike Audience", "Custom Audience 1", "Custom Audience 2"}
	for i, a := range adSets {
		assert.Equal(t, want[i], a.Audience)
		assert.Equal(t, fmt.Sprintf("Spring Sale - Ad Set %d", i+1), a.Name)
		assert.Equal(t, fmt.Sprintf("adset-%d", i+1), a.ID)
		assert.Equal(t, 225.0, a.Budget)
		assert.Equal(t, "Mumbai", a.Location)
		assert.Equal(t, DefaultPlacements, a.Placements)
		assert.Equal(t, Schedule{Start: draft.StartDate, End: draft.EndDate}, a.Schedule)
	}
}

func TestGenerateAdSetsBudgetSumsToDailyBudget(t *testing.T) {
	budgets := []float64{0, 1, 92.99, 100, 333.33, 1000, 12345.67}
	for _, budget := range budgets {
		for n := 1; n <= 7; n++ {
			d := CampaignDraft{Name: "c", DailyBudget: budget, AdSetCount: n}
			adSets := GenerateAdSets(d, BusinessProfile{})
			require.Len(t, adSets, n)
			assert.InDelta(t, budget, TotalBudget(adSets), 1e-9*math.Max(1, budget), "budget=%v n=%d", budget, n)
		}
	}
}

func TestGenerateAdSetsLocationFallback(t *testing.T) {
	d := CampaignDraft{Name: "c", AdSetCount: 1}

	assert.Equal(t, "Pune", GenerateAdSets(d, BusinessProfile{Location: "Pune"})[0].Location)
	assert.Equal(t, DefaultLocation, GenerateAdSets(d, BusinessProfile{})[0].Location)

	d.Location = "  "
	assert.Equal(t, DefaultLocation, GenerateAdSets(d, BusinessProfile{Location: " "})[0].Location)
}

func TestGenerateAdSetsDefaultEndDate(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	d := CampaignDraft{Name: "c", AdSetCount: 2, StartDate: start}

	adSets := GenerateAdSets(d, BusinessProfile{})
	assert.Equal(t, start.AddDate(0, 0, 30), adSets[1].Schedule.End)
}

func TestGenerateAdSetsIsIdempotent(t *testing.T) {
	draft := validDraft()
	profile := BusinessProfile{Location: "Delhi"}

	first := GenerateAdSets(draft, profile)
	second := GenerateAdSets(draft, profile)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("regeneration differs (-first +second):\n%s", diff)
	}

	// placements are not shared between records
	first[0].Placements[0] = "Audience Network"
	assert.Equal(t, "Facebook Feed", first[1].Placements[0])
	assert.Equal(t, "Facebook Feed", DefaultPlacements[0])
}

func TestSetLocation(t *testing.T) {
	adSets := GenerateAdSets(validDraft(), BusinessProfile{})

	edited, ok := SetLocation(adSets, "adset-2", "Chennai")
	require.True(t, ok)

	want := make([]AdSet, len(adSets))
	copy(want, adSets)
	want[1].Location = "Chennai"
	if diff := cmp.Diff(want, edited); diff != "" {
		t.Fatalf("unexpected edit (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Mumbai", adSets[1].Location, "input must not be mutated")

	unchanged, ok := SetLocation(adSets, "adset-42", "Chennai")
	assert.False(t, ok)
	if diff := cmp.Diff(adSets, unchanged); diff != "" {
		t.Fatalf("unknown id changed the list:\n%s", diff)
	}
}
