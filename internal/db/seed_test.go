package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/adapter/memory"
	"campaign-wizard/internal/adapter/system/fake"
	"campaign-wizard/internal/adapter/usecase"
)

func TestSeedAddsDemoCampaignsOnce(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	n, err := Seed(ctx, kv, "s1", fake.NewIDs("demo"), now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Seed(ctx, kv, "s1", fake.NewIDs("demo"), now)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding is skipped when campaigns exist")

	campaigns, err := usecase.NewDraftStore(kv, "s1").Campaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Summer Sale Campaign", campaigns[0].Name)
	assert.Equal(t, now.AddDate(0, 0, -7), campaigns[0].CreatedAt)
	assert.Equal(t, int64(89000), campaigns[1].Performance.Impressions)
}
