package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		perAdSet float64
		want     PerformanceTier
	}{
		{500, TierUntouchable},
		{1200, TierUntouchable},
		{499.99, TierInsane},
		{200, TierInsane},
		{199.99, TierBest},
		{150, TierBest},
		{149.99, TierLow},
		{93, TierLow},
		{92.99, TierVeryLow},
		{0.01, TierVeryLow},
		{0, TierNone},
		{-10, TierNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.perAdSet), "perAdSet=%v", tc.perAdSet)
	}
}

func TestAllocate(t *testing.T) {
	a := Allocate(1000, 4)
	assert.Equal(t, 250.0, a.PerAdSet)
	assert.Equal(t, TierInsane, a.Tier)

	// a non-positive count behaves like a single ad set
	assert.Equal(t, Allocation{PerAdSet: 300, Tier: TierInsane}, Allocate(300, 0))
	assert.Equal(t, Allocation{PerAdSet: 300, Tier: TierInsane}, Allocate(300, -2))

	assert.Equal(t, Allocation{}, Allocate(0, 3))
	assert.Equal(t, Allocation{}, Allocate(-50, 3))
	assert.Equal(t, Allocation{}, Allocate(math.NaN(), 3))
	assert.Equal(t, Allocation{}, Allocate(math.Inf(1), 3))
}

func TestTierPresentation(t *testing.T) {
	assert.Equal(t, "Very Low Performance", TierVeryLow.Label())
	assert.Equal(t, 95.0, TierUntouchable.Score())
	assert.Equal(t, TierInsane.Advice(), TierUntouchable.Advice())
	assert.Empty(t, TierNone.Label())
	assert.Empty(t, TierNone.Advice())
}

func TestPreviewProjection(t *testing.T) {
	p := Preview(450, 3, func() float64 { return 0.5 })

	assert.Equal(t, TierBest, p.Tier)
	assert.Equal(t, "Best Performance", p.Label)
	assert.Len(t, p.Projection, ProjectionDays)
	for i, pt := range p.Projection {
		assert.Equal(t, i+1, pt.Day)
		assert.Equal(t, 75.0, pt.Performance)
		assert.Equal(t, 7750.0, pt.Reach)
		assert.Equal(t, 775.0, pt.Clicks)
	}
}

func TestCampaignDraftRecompute(t *testing.T) {
	d := CampaignDraft{DailyBudget: 600, AdSetCount: 3}
	d.Recompute()
	assert.Equal(t, 200.0, d.BudgetPerAdSet)
	assert.Equal(t, TierInsane, d.PerformanceTier)

	d.AdSetCount = 4
	d.Recompute()
	assert.Equal(t, 150.0, d.BudgetPerAdSet)
	assert.Equal(t, TierBest, d.PerformanceTier)

	d.AdSetCount = 0
	d.Recompute()
	assert.Zero(t, d.BudgetPerAdSet)
	assert.Equal(t, TierNone, d.PerformanceTier)
}
