package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// Keys under which the wizard persists its records.
const (
	KeyBusinessProfile    = "business-profile"
	KeyCampaignDraft      = "campaign-draft"
	KeyCreativeDraft      = "creative-draft"
	KeyAdSetList          = "ad-set-list"
	KeyFinalizedCampaigns = "finalized-campaign-list"
	KeyHasShownIntro      = "has-shown-intro"
	KeyConnectionGateway  = "connection-gateway"
)

// DraftStore gives typed access to the records of one session. Every value
// is stored as a whole JSON document; absent keys read as zero values.
type DraftStore struct {
	kv      port.KeyValue
	session string
}

func NewDraftStore(kv port.KeyValue, session string) *DraftStore {
	return &DraftStore{kv: kv, session: session}
}

func (s *DraftStore) BusinessProfile(ctx context.Context) (domain.BusinessProfile, bool, error) {
	var p domain.BusinessProfile
	ok, err := s.load(ctx, KeyBusinessProfile, &p)
	return p, ok, err
}

func (s *DraftStore) SetBusinessProfile(ctx context.Context, p domain.BusinessProfile) error {
	return s.save(ctx, KeyBusinessProfile, p)
}

func (s *DraftStore) CampaignDraft(ctx context.Context) (domain.CampaignDraft, bool, error) {
	var d domain.CampaignDraft
	ok, err := s.load(ctx, KeyCampaignDraft, &d)
	return d, ok, err
}

func (s *DraftStore) SetCampaignDraft(ctx context.Context, d domain.CampaignDraft) error {
	return s.save(ctx, KeyCampaignDraft, d)
}

// CreativeDraft returns the stored creative or an empty single-image draft.
func (s *DraftStore) CreativeDraft(ctx context.Context) (domain.CreativeDraft, bool, error) {
	d := domain.NewCreativeDraft()
	ok, err := s.load(ctx, KeyCreativeDraft, &d)
	return d, ok, err
}

func (s *DraftStore) SetCreativeDraft(ctx context.Context, d domain.CreativeDraft) error {
	return s.save(ctx, KeyCreativeDraft, d)
}

func (s *DraftStore) AdSets(ctx context.Context) ([]domain.AdSet, error) {
	var list []domain.AdSet
	_, err := s.load(ctx, KeyAdSetList, &list)
	return list, err
}

func (s *DraftStore) SetAdSets(ctx context.Context, list []domain.AdSet) error {
	return s.save(ctx, KeyAdSetList, list)
}

func (s *DraftStore) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	var list []domain.Campaign
	_, err := s.load(ctx, KeyFinalizedCampaigns, &list)
	return list, err
}

func (s *DraftStore) SetCampaigns(ctx context.Context, list []domain.Campaign) error {
	return s.save(ctx, KeyFinalizedCampaigns, list)
}

// AppendCampaign adds c to the finalized campaign list.
func (s *DraftStore) AppendCampaign(ctx context.Context, c domain.Campaign) error {
	list, err := s.Campaigns(ctx)
	if err != nil {
		return err
	}
	return s.SetCampaigns(ctx, append(list, c))
}

func (s *DraftStore) IntroShown(ctx context.Context) (bool, error) {
	var shown bool
	_, err := s.load(ctx, KeyHasShownIntro, &shown)
	return shown, err
}

func (s *DraftStore) SetIntroShown(ctx context.Context) error {
	return s.save(ctx, KeyHasShownIntro, true)
}

func (s *DraftStore) Connection(ctx context.Context) (domain.ConnectionState, error) {
	var c domain.ConnectionState
	_, err := s.load(ctx, KeyConnectionGateway, &c)
	return c, err
}

func (s *DraftStore) SetConnection(ctx context.Context, c domain.ConnectionState) error {
	return s.save(ctx, KeyConnectionGateway, c)
}

// ClearWizard drops the in-progress drafts once a campaign was launched.
// The business profile and the campaign list are kept.
func (s *DraftStore) ClearWizard(ctx context.Context) error {
	for _, key := range []string{KeyCampaignDraft, KeyCreativeDraft, KeyAdSetList} {
		if err := s.kv.Delete(ctx, s.session, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

func (s *DraftStore) load(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, s.session, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DraftStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = s.kv.Set(ctx, s.session, key, raw); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
