package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionGateway(t *testing.T) {
	var s ConnectionState

	_, err := s.Next()
	assert.ErrorIs(t, err, ErrValidation, "next requires a selection")

	_, err = s.Select("instagram-page")
	assert.ErrorIs(t, err, ErrValidation, "option belongs to another step")

	s, err = s.Select("main-business")
	require.NoError(t, err)
	s, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, "facebook-pages", s.CurrentStep().ID)

	s, err = s.Previous()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Step)
	assert.Equal(t, "main-business", s.Selected["business-portfolio"])

	s, _ = s.Next()
	s, _ = s.Select("instagram-page")
	s, _ = s.Next()
	s, _ = s.Select("primary-ad-account")
	s, err = s.Next()
	require.NoError(t, err)
	assert.True(t, s.Connected)
	assert.Len(t, s.Selected, 3)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConnectionSelectDoesNotAlias(t *testing.T) {
	a, err := ConnectionState{}.Select("main-business")
	require.NoError(t, err)
	b, err := a.Select("secondary-business")
	require.NoError(t, err)

	assert.Equal(t, "main-business", a.Selected["business-portfolio"])
	assert.Equal(t, "secondary-business", b.Selected["business-portfolio"])
}

func TestSummarize(t *testing.T) {
	campaigns := []Campaign{
		{Status: CampaignActive, Performance: Performance{Impressions: 10, Clicks: 2, Conversions: 1, Spend: 5.5}},
		{Status: CampaignPaused, Performance: Performance{Impressions: 5, Clicks: 1, Spend: 1}},
	}
	s := Summarize(campaigns)
	assert.Equal(t, 2, s.Campaigns)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, Performance{Impressions: 15, Clicks: 3, Conversions: 1, Spend: 6.5}, s.Totals)
}

func TestNewCampaignDefaults(t *testing.T) {
	c := NewCampaign("id-1", " ", 300, 0, fixedNow)
	assert.Equal(t, DefaultCampaignName, c.Name)
	assert.Equal(t, CampaignActive, c.Status)
	assert.Equal(t, 1, c.AdSetCount)
	assert.Equal(t, Performance{}, c.Performance)
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
