package db

import (
	"context"
	"time"

	"campaign-wizard/internal/adapter/usecase"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

type demoCampaign struct {
	name     string
	budget   float64
	adSets   int
	age      time.Duration
	counters domain.Performance
}

var demoCampaigns = []demoCampaign{
	{
		name: "Summer Sale Campaign", budget: 2500, adSets: 3, age: 7 * 24 * time.Hour,
		counters: domain.Performance{Impressions: 125000, Clicks: 4500, Conversions: 230, Spend: 12500},
	},
	{
		name: "Product Launch Campaign", budget: 1800, adSets: 2, age: 3 * 24 * time.Hour,
		counters: domain.Performance{Impressions: 89000, Clicks: 3200, Conversions: 180, Spend: 8900},
	},
}

// Seed fills the dashboard of session with demo campaigns. Sessions that
// already have campaigns are left alone. It returns the number of
// campaigns added.
func Seed(ctx context.Context, kv port.KeyValue, session string, ids port.IDGenerator, now time.Time) (int, error) {
	store := usecase.NewDraftStore(kv, session)
	existing, err := store.Campaigns(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	campaigns := make([]domain.Campaign, 0, len(demoCampaigns))
	for _, d := range demoCampaigns {
		c := domain.NewCampaign(ids.NewID(), d.name, d.budget, d.adSets, now.Add(-d.age))
		c.Performance = d.counters
		campaigns = append(campaigns, c)
	}
	if err = store.SetCampaigns(ctx, campaigns); err != nil {
		return 0, err
	}
	return len(campaigns), nil
}
