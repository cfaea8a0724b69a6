package port

import (
	"context"

	"campaign-wizard/internal/core/domain"
)

// WizardUseCase defines the onboarding and campaign building operations.
// This interface is the primary port used by the HTTP adapter. Every
// method is scoped to a session, which is the signed-in user's id.
type WizardUseCase interface {
	// IntroShown reports whether the intro has been shown to the session.
	IntroShown(ctx context.Context, session string) (bool, error)
	// MarkIntroShown records that the intro was shown.
	MarkIntroShown(ctx context.Context, session string) error

	// SaveBusinessProfile stores the onboarding profile. A profile can be
	// saved only once.
	SaveBusinessProfile(ctx context.Context, session string, profile domain.BusinessProfile) error
	// BusinessProfile returns the stored profile or domain.ErrNotFound.
	BusinessProfile(ctx context.Context, session string) (domain.BusinessProfile, error)

	// Connection returns the connection gateway progress.
	Connection(ctx context.Context, session string) (domain.ConnectionState, error)
	// SelectConnection picks an option on the current gateway step.
	SelectConnection(ctx context.Context, session, optionID string) (domain.ConnectionState, error)
	// NextConnectionStep advances the gateway.
	NextConnectionStep(ctx context.Context, session string) (domain.ConnectionState, error)
	// PreviousConnectionStep goes back one gateway step.
	PreviousConnectionStep(ctx context.Context, session string) (domain.ConnectionState, error)

	// PreviewSetup computes the live budget preview without storing it.
	PreviewSetup(dailyBudget float64, adSetCount int) domain.SetupPreview
	// SaveCampaignDraft validates the setup input, derives the budget
	// split and stores the draft.
	SaveCampaignDraft(ctx context.Context, session string, draft domain.CampaignDraft) (domain.CampaignDraft, error)
	// CampaignDraft returns the stored draft, empty when absent.
	CampaignDraft(ctx context.Context, session string) (domain.CampaignDraft, error)

	// CreativeDraft returns the stored creative, an empty single-image
	// draft when absent.
	CreativeDraft(ctx context.Context, session string) (domain.CreativeDraft, error)
	// SaveCreativeDraft stores the creative after checking its limits.
	SaveCreativeDraft(ctx context.Context, session string, draft domain.CreativeDraft) (domain.CreativeDraft, error)
	// SetCreativeFormat switches the creative layout, dropping its media.
	SetCreativeFormat(ctx context.Context, session string, format domain.CreativeFormat) (domain.CreativeDraft, error)
	// AddCreativeMedia attaches a media item to the creative.
	AddCreativeMedia(ctx context.Context, session string, kind domain.MediaKind, content string) (domain.CreativeDraft, error)
	// RemoveCreativeMedia detaches a media item by id.
	RemoveCreativeMedia(ctx context.Context, session, mediaID string) (domain.CreativeDraft, error)
	// CompleteCreative runs the completeness gate on the stored creative.
	CompleteCreative(ctx context.Context, session string) (domain.CreativeDraft, error)

	// GenerateAdSets replaces the stored ad sets with a fresh generation
	// from the draft and business profile.
	GenerateAdSets(ctx context.Context, session string) ([]domain.AdSet, error)
	// AdSets returns the stored ad sets.
	AdSets(ctx context.Context, session string) ([]domain.AdSet, error)
	// EditAdSetLocation changes the location of one ad set. Unknown ids
	// leave the list unchanged.
	EditAdSetLocation(ctx context.Context, session, adSetID, location string) ([]domain.AdSet, error)

	// Campaigns returns the finalized campaigns of the session.
	Campaigns(ctx context.Context, session string) ([]domain.Campaign, error)
	// CampaignSummary totals the counters of all finalized campaigns.
	CampaignSummary(ctx context.Context, session string) (domain.CampaignSummary, error)
}

// LaunchUseCase runs the payment gate and the phased launch.
type LaunchUseCase interface {
	// CheckPayment asks the payment collaborator and records the outcome.
	CheckPayment(ctx context.Context, session string) (bool, error)
	// Launch validates the wizard output and starts the phase sequence.
	// It returns domain.ErrGateBlocked while the payment is unverified.
	Launch(ctx context.Context, session string) error
	// Status returns a snapshot of the session's launch.
	Status(session string) LaunchSnapshot
	// Abort stops a running launch, for instance when the user leaves.
	Abort(session string)
}

// PasswordResetUseCase drives the one-time code password reset.
type PasswordResetUseCase interface {
	// Start opens a reset for email and sends the first code.
	Start(ctx context.Context, email string) (string, domain.OtpSession, error)
	// Session returns the state of a reset.
	Session(id string) (domain.OtpSession, error)
	// SubmitEmail sends a code after the user went back to the email step.
	SubmitEmail(ctx context.Context, id, email string) (domain.OtpSession, error)
	// Resend issues a new code, invalidating the previous one.
	Resend(ctx context.Context, id string) (domain.OtpSession, error)
	// SubmitCode compares the user's input with the issued code.
	SubmitCode(ctx context.Context, id, code string) (domain.OtpSession, error)
	// SubmitPassword sets the new password once the code was verified.
	SubmitPassword(ctx context.Context, id, password, confirm string) (domain.OtpSession, error)
	// Back returns to the previous step.
	Back(ctx context.Context, id string) (domain.OtpSession, error)
}

// LaunchSnapshot is a point-in-time view of a launch. It is a DTO used by
// the HTTP layer and does not contain domain behaviour.
type LaunchSnapshot struct {
	domain.LaunchState
	PhaseName string           `json:"phase_name"`
	Phases    []string         `json:"phases"`
	Campaign  *domain.Campaign `json:"campaign,omitempty"`
	Error     string           `json:"error,omitempty"`
	// Navigate turns true once the completion delay has passed and the
	// client should move on to the dashboard.
	Navigate bool `json:"navigate"`
}
