package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() CampaignDraft {
	start := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	return CampaignDraft{
		Name:         "Spring Sale",
		ProductPrice: 49.9,
		Goal:         GoalSales,
		Objective:    "Conversions",
		Description:  "Discounted sneakers",
		Location:     "Mumbai",
		DailyBudget:  900,
		AdSetCount:   3,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 14),
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestCampaignDraftValidate(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	// same calendar day end date is allowed
	d := validDraft()
	d.EndDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.Validate())

	err := CampaignDraft{AdSetCount: 9}.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.ElementsMatch(t, []string{
		"name", "product_price", "goal", "objective", "description",
		"location", "daily_budget", "ad_set_count", "end_date",
	}, fieldsOf(t, err))

	d = validDraft()
	d.EndDate = d.StartDate.AddDate(0, 0, -1)
	assert.Equal(t, []string{"end_date"}, fieldsOf(t, d.Validate()))
}

func TestBusinessProfileValidate(t *testing.T) {
	p := BusinessProfile{
		Name:        "Acme",
		Category:    "Automotive",
		Description: "Spare parts",
		Location:    "Pune",
		Phone:       "+91 555 0100",
		Email:       "owner@acme.test",
	}
	require.NoError(t, p.Validate())
	assert.False(t, p.IsZero())
	assert.True(t, BusinessProfile{}.IsZero())

	p.Category = "Space Travel"
	p.Email = "not-an-email"
	assert.ElementsMatch(t, []string{"category", "email"}, fieldsOf(t, p.Validate()))
}
