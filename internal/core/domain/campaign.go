package domain

import (
	"strings"
	"time"
)

// CampaignStatus is the delivery state of a finalized campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// DefaultCampaignName names a campaign whose draft had no name.
const DefaultCampaignName = "New Campaign"

// Performance holds delivery counters. They start at zero and are only
// changed by the external reporting collaborator.
type Performance struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// Add returns the element-wise sum of p and o.
func (p Performance) Add(o Performance) Performance {
	return Performance{
		Impressions: p.Impressions + o.Impressions,
		Clicks:      p.Clicks + o.Clicks,
		Conversions: p.Conversions + o.Conversions,
		Spend:       p.Spend + o.Spend,
	}
}

// Campaign is the finalized record produced by a successful launch.
// Budget is the daily budget in currency units.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	AdSetCount  int            `json:"ad_set_count"`
	CreatedAt   time.Time      `json:"created_at"`
	Performance Performance    `json:"performance"`
}

// NewCampaign builds an active campaign with zeroed counters.
func NewCampaign(id, name string, budget float64, adSetCount int, now time.Time) Campaign {
	if strings.TrimSpace(name) == "" {
		name = DefaultCampaignName
	}
	if adSetCount <= 0 {
		adSetCount = 1
	}
	return Campaign{
		ID:         id,
		Name:       name,
		Status:     CampaignActive,
		Budget:     budget,
		AdSetCount: adSetCount,
		CreatedAt:  now,
	}
}

// CampaignSummary aggregates the dashboard totals of a campaign list.
type CampaignSummary struct {
	Campaigns int         `json:"campaigns"`
	Active    int         `json:"active"`
	Totals    Performance `json:"totals"`
}

// Summarize totals the counters of every campaign.
func Summarize(campaigns []Campaign) CampaignSummary {
	var s CampaignSummary
	for _, c := range campaigns {
		s.Campaigns++
		if c.Status == CampaignActive {
			s.Active++
		}
		s.Totals = s.Totals.Add(c.Performance)
	}
	return s
}
