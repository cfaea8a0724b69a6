package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validDraft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Name:         "Spring Sale",
		ProductPrice: 49.9,
		Goal:         domain.GoalSales,
		Objective:    "Conversions",
		Description:  "Discounted sneakers",
		Location:     "Mumbai",
		DailyBudget:  900,
		AdSetCount:   3,
		StartDate:    fixedNow,
		EndDate:      fixedNow.AddDate(0, 0, 14),
	}
}

func validProfile() domain.BusinessProfile {
	return domain.BusinessProfile{
		Name:        "Acme Shoes",
		Category:    "E-commerce & Retail",
		Description: "Sneakers and boots",
		Location:    "Delhi",
		Phone:       "+91 555 0100",
		Email:       "owner@acme.test",
	}
}

func completeCreative() domain.CreativeDraft {
	return domain.CreativeDraft{
		Format:         domain.FormatSingle,
		Media:          []domain.MediaItem{{ID: "m1", Kind: domain.MediaImage, Content: "https://cdn.acme.test/a.png"}},
		Headline:       "Spring sneakers",
		Description:    "Half price this week only",
		CallToAction:   "shop-now",
		DestinationURL: "https://acme.test/spring",
	}
}

// seedWizard stores everything a launch needs.
func seedWizard(t *testing.T, kv port.KeyValue, session string) domain.CampaignDraft {
	t.Helper()
	ctx := context.Background()
	s := NewDraftStore(kv, session)

	draft := validDraft()
	draft.Recompute()
	require.NoError(t, s.SetCampaignDraft(ctx, draft))
	require.NoError(t, s.SetCreativeDraft(ctx, completeCreative()))
	require.NoError(t, s.SetAdSets(ctx, domain.GenerateAdSets(draft, domain.BusinessProfile{})))
	return draft
}

// brokenKV fails every call with err.
type brokenKV struct {
	err error
}

func (b brokenKV) Get(context.Context, string, string) ([]byte, bool, error) {
	return nil, false, b.err
}

func (b brokenKV) Set(context.Context, string, string, []byte) error { return b.err }
func (b brokenKV) Delete(context.Context, string, string) error      { return b.err }
