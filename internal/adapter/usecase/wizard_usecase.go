package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// WizardUseCase implements port.WizardUseCase on top of a key-value store.
// Derivations are delegated to the pure functions of the domain package;
// this type only loads, applies and stores.
type WizardUseCase struct {
	kv     port.KeyValue
	random port.RandomSource
	ids    port.IDGenerator
	log    *slog.Logger
	locks  sessionLocks
}

// NewWizardUseCase wires the wizard to its store. random feeds the
// projection jitter, ids names media items.
func NewWizardUseCase(kv port.KeyValue, random port.RandomSource, ids port.IDGenerator, log *slog.Logger) *WizardUseCase {
	return &WizardUseCase{kv: kv, random: random, ids: ids, log: log}
}

var _ port.WizardUseCase = (*WizardUseCase)(nil)

func (u *WizardUseCase) store(session string) *DraftStore {
	return NewDraftStore(u.kv, session)
}

func (u *WizardUseCase) IntroShown(ctx context.Context, session string) (bool, error) {
	return u.store(session).IntroShown(ctx)
}

func (u *WizardUseCase) MarkIntroShown(ctx context.Context, session string) error {
	return u.store(session).SetIntroShown(ctx)
}

// SaveBusinessProfile validates and stores the profile. The profile is
// write-once; a second save fails with a validation error.
func (u *WizardUseCase) SaveBusinessProfile(ctx context.Context, session string, profile domain.BusinessProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	defer u.locks.lock(session)()

	s := u.store(session)
	_, exists, err := s.BusinessProfile(ctx)
	if err != nil {
		return err
	}
	if exists {
		return domain.Invalid("business_profile", "has already been created")
	}
	if err = s.SetBusinessProfile(ctx, profile); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "business profile created", "session", session, "category", profile.Category)
	return nil
}

func (u *WizardUseCase) BusinessProfile(ctx context.Context, session string) (domain.BusinessProfile, error) {
	p, ok, err := u.store(session).BusinessProfile(ctx)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, fmt.Errorf("business profile: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (u *WizardUseCase) Connection(ctx context.Context, session string) (domain.ConnectionState, error) {
	return u.store(session).Connection(ctx)
}

func (u *WizardUseCase) SelectConnection(ctx context.Context, session, optionID string) (domain.ConnectionState, error) {
	return u.updateConnection(ctx, session, func(c domain.ConnectionState) (domain.ConnectionState, error) {
		return c.Select(optionID)
	})
}

func (u *WizardUseCase) NextConnectionStep(ctx context.Context, session string) (domain.ConnectionState, error) {
	return u.updateConnection(ctx, session, domain.ConnectionState.Next)
}

func (u *WizardUseCase) PreviousConnectionStep(ctx context.Context, session string) (domain.ConnectionState, error) {
	return u.updateConnection(ctx, session, domain.ConnectionState.Previous)
}

func (u *WizardUseCase) updateConnection(
	ctx context.Context,
	session string,
	apply func(domain.ConnectionState) (domain.ConnectionState, error),
) (domain.ConnectionState, error) {
	defer u.locks.lock(session)()

	s := u.store(session)
	cur, err := s.Connection(ctx)
	if err != nil {
		return cur, err
	}
	next, err := apply(cur)
	if err != nil {
		return cur, err
	}
	if err = s.SetConnection(ctx, next); err != nil {
		return cur, err
	}
	if next.Connected && !cur.Connected {
		u.log.InfoContext(ctx, "ad platform connected", "session", session)
	}
	return next, nil
}

func (u *WizardUseCase) PreviewSetup(dailyBudget float64, adSetCount int) domain.SetupPreview {
	return domain.Preview(dailyBudget, adSetCount, u.random.Float64)
}

// SaveCampaignDraft validates the setup, recomputes the derived budget
// fields and stores the draft. Derived fields supplied by the caller are
// ignored.
func (u *WizardUseCase) SaveCampaignDraft(ctx context.Context, session string, draft domain.CampaignDraft) (domain.CampaignDraft, error) {
	draft.Recompute()
	if err := draft.Validate(); err != nil {
		return draft, err
	}
	if err := u.store(session).SetCampaignDraft(ctx, draft); err != nil {
		return draft, err
	}
	return draft, nil
}

func (u *WizardUseCase) CampaignDraft(ctx context.Context, session string) (domain.CampaignDraft, error) {
	d, _, err := u.store(session).CampaignDraft(ctx)
	return d, err
}

func (u *WizardUseCase) CreativeDraft(ctx context.Context, session string) (domain.CreativeDraft, error) {
	d, _, err := u.store(session).CreativeDraft(ctx)
	return d, err
}

// SaveCreativeDraft replaces the copy fields of the creative. Media and
// format are managed by their own operations and are kept from the stored
// draft.
func (u *WizardUseCase) SaveCreativeDraft(ctx context.Context, session string, draft domain.CreativeDraft) (domain.CreativeDraft, error) {
	return u.updateCreative(ctx, session, func(d *domain.CreativeDraft) error {
		d.Headline = draft.Headline
		d.Description = draft.Description
		d.CallToAction = draft.CallToAction
		d.DestinationURL = strings.TrimSpace(draft.DestinationURL)
		d.DisplayURL = strings.TrimSpace(draft.DisplayURL)
		return nil
	})
}

func (u *WizardUseCase) SetCreativeFormat(ctx context.Context, session string, format domain.CreativeFormat) (domain.CreativeDraft, error) {
	if !format.Valid() {
		return domain.CreativeDraft{}, domain.Invalid("format", "must be one of single, carousel, video")
	}
	return u.updateCreative(ctx, session, func(d *domain.CreativeDraft) error {
		d.SetFormat(format)
		return nil
	})
}

// AddCreativeMedia attaches content under a fresh id. Video media is only
// accepted by the video format and images by the others.
func (u *WizardUseCase) AddCreativeMedia(ctx context.Context, session string, kind domain.MediaKind, content string) (domain.CreativeDraft, error) {
	if strings.TrimSpace(content) == "" {
		return domain.CreativeDraft{}, domain.Invalid("content", "is required")
	}
	return u.updateCreative(ctx, session, func(d *domain.CreativeDraft) error {
		want := domain.MediaImage
		if d.Format == domain.FormatVideo {
			want = domain.MediaVideo
		}
		if kind != want {
			return domain.Invalid("kind", fmt.Sprintf("%s format takes %s media", d.Format, want))
		}
		d.AddMedia(domain.MediaItem{ID: u.ids.NewID(), Kind: kind, Content: content})
		return nil
	})
}

func (u *WizardUseCase) RemoveCreativeMedia(ctx context.Context, session, mediaID string) (domain.CreativeDraft, error) {
	return u.updateCreative(ctx, session, func(d *domain.CreativeDraft) error {
		if !d.RemoveMedia(mediaID) {
			return fmt.Errorf("media %q: %w", mediaID, domain.ErrNotFound)
		}
		return nil
	})
}

// CompleteCreative returns the stored creative when it passes the
// completeness gate and a ValidationError naming the missing parts
// otherwise.
func (u *WizardUseCase) CompleteCreative(ctx context.Context, session string) (domain.CreativeDraft, error) {
	d, _, err := u.store(session).CreativeDraft(ctx)
	if err != nil {
		return d, err
	}
	return d, d.Validate()
}

func (u *WizardUseCase) updateCreative(ctx context.Context, session string, apply func(*domain.CreativeDraft) error) (domain.CreativeDraft, error) {
	defer u.locks.lock(session)()

	s := u.store(session)
	d, _, err := s.CreativeDraft(ctx)
	if err != nil {
		return d, err
	}
	if err = apply(&d); err != nil {
		return d, err
	}
	if err = d.CheckLimits(); err != nil {
		return d, err
	}
	if err = s.SetCreativeDraft(ctx, d); err != nil {
		return d, err
	}
	return d, nil
}

// GenerateAdSets materialises the ad sets of the stored draft, replacing
// any previous list. The business profile is optional and only supplies a
// fallback location.
func (u *WizardUseCase) GenerateAdSets(ctx context.Context, session string) ([]domain.AdSet, error) {
	defer u.locks.lock(session)()

	s := u.store(session)
	draft, ok, err := s.CampaignDraft(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("campaign draft: %w", domain.ErrNotFound)
	}
	profile, _, err := s.BusinessProfile(ctx)
	if err != nil {
		return nil, err
	}

	adSets := domain.GenerateAdSets(draft, profile)
	if err = s.SetAdSets(ctx, adSets); err != nil {
		return nil, err
	}
	u.log.DebugContext(ctx, "ad sets generated", "session", session, "count", len(adSets))
	return adSets, nil
}

func (u *WizardUseCase) AdSets(ctx context.Context, session string) ([]domain.AdSet, error) {
	return u.store(session).AdSets(ctx)
}

// EditAdSetLocation changes one ad set's location. An unknown id is not an
// error and returns the list unchanged.
func (u *WizardUseCase) EditAdSetLocation(ctx context.Context, session, adSetID, location string) ([]domain.AdSet, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domain.Invalid("location", "is required")
	}
	defer u.locks.lock(session)()

	s := u.store(session)
	list, err := s.AdSets(ctx)
	if err != nil {
		return nil, err
	}
	updated, found := domain.SetLocation(list, adSetID, location)
	if !found {
		return list, nil
	}
	if err = s.SetAdSets(ctx, updated); err != nil {
		return list, err
	}
	return updated, nil
}

func (u *WizardUseCase) Campaigns(ctx context.Context, session string) ([]domain.Campaign, error) {
	list, err := u.store(session).Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Campaign{}
	}
	return list, nil
}

func (u *WizardUseCase) CampaignSummary(ctx context.Context, session string) (domain.CampaignSummary, error) {
	list, err := u.store(session).Campaigns(ctx)
	if err != nil {
		return domain.CampaignSummary{}, err
	}
	return domain.Summarize(list), nil
}
