package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// LaunchUseCase runs the payment gate and the timer-driven launch of each
// session. The state machine lives in domain.LaunchState; this type owns
// the ticker, the goroutine and the side effects of completion.
type LaunchUseCase struct {
	kv       port.KeyValue
	clock    port.Clock
	payment  port.PaymentVerifier
	notifier port.LaunchNotifier
	ids      port.IDGenerator
	log      *slog.Logger

	interval        time.Duration
	completionDelay time.Duration

	mu   sync.Mutex
	runs map[string]*launchRun
	wg   sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

type launchRun struct {
	state    domain.LaunchState
	campaign *domain.Campaign
	err      string
	navigate bool

	cancel context.CancelFunc
	done   chan struct{}
}

// launchInput is the wizard output captured when the launch starts.
type launchInput struct {
	draft  domain.CampaignDraft
	adSets []domain.AdSet
}

// NewLaunchUseCase creates the launch runner. Call Close to stop running
// launches on shutdown.
func NewLaunchUseCase(
	kv port.KeyValue,
	clock port.Clock,
	payment port.PaymentVerifier,
	notifier port.LaunchNotifier,
	ids port.IDGenerator,
	cfg configs.Wizard,
	log *slog.Logger,
) *LaunchUseCase {
	interval := cfg.PhaseInterval
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &LaunchUseCase{
		kv:              kv,
		clock:           clock,
		payment:         payment,
		notifier:        notifier,
		ids:             ids,
		log:             log,
		interval:        interval,
		completionDelay: cfg.CompletionDelay,
		runs:            make(map[string]*launchRun),
		ctx:             ctx,
		cancel:          cancel,
	}
}

var _ port.LaunchUseCase = (*LaunchUseCase)(nil)

// CheckPayment asks the payment collaborator and feeds the outcome into
// the launch state. A completed launch is reset so that the next launch
// passes the gate again.
func (u *LaunchUseCase) CheckPayment(ctx context.Context, session string) (bool, error) {
	u.mu.Lock()
	if run, ok := u.runs[session]; ok && run.state.Status == domain.LaunchRunning {
		u.mu.Unlock()
		return false, fmt.Errorf("%w: launch in progress", domain.ErrInvalidTransition)
	}
	u.mu.Unlock()

	verified, err := u.payment.VerifyPayment(ctx, session)
	if err != nil {
		return false, fmt.Errorf("verify payment: %w", err)
	}
	ev := domain.LaunchPaymentRejected
	if verified {
		ev = domain.LaunchPaymentVerified
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	run := u.runs[session]
	if run == nil || run.state.Status == domain.LaunchCompleted {
		if run != nil {
			run.cancel()
		}
		run = &launchRun{state: domain.NewLaunchState(), cancel: func() {}, done: closedChan()}
		u.runs[session] = run
	}
	next, err := run.state.Apply(ev)
	if err != nil {
		return false, err
	}
	run.state = next
	u.log.InfoContext(ctx, "payment checked", "session", session, "verified", verified)
	return verified, nil
}

// Launch checks that the wizard produced ad sets and a complete creative,
// then passes the payment gate and starts ticking through the phases.
func (u *LaunchUseCase) Launch(ctx context.Context, session string) error {
	in, err := u.loadInput(ctx, session)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	run := u.runs[session]
	if run == nil {
		run = &launchRun{state: domain.NewLaunchState()}
	}
	next, err := run.state.Apply(domain.LaunchStart)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(u.ctx)
	ticker := u.clock.NewTicker(u.interval)
	run = &launchRun{state: next, cancel: cancel, done: make(chan struct{})}
	u.runs[session] = run

	u.log.InfoContext(ctx, "launch started", "session", session, "ad_sets", len(in.adSets))
	u.wg.Add(1)
	go u.execute(runCtx, session, run, ticker, in)
	return nil
}

func (u *LaunchUseCase) loadInput(ctx context.Context, session string) (launchInput, error) {
	s := NewDraftStore(u.kv, session)
	adSets, err := s.AdSets(ctx)
	if err != nil {
		return launchInput{}, err
	}
	if len(adSets) == 0 {
		return launchInput{}, domain.Invalid("ad_sets", "generate ad sets before launching")
	}
	creative, _, err := s.CreativeDraft(ctx)
	if err != nil {
		return launchInput{}, err
	}
	if err = creative.Validate(); err != nil {
		return launchInput{}, err
	}
	draft, _, err := s.CampaignDraft(ctx)
	if err != nil {
		return launchInput{}, err
	}
	return launchInput{draft: draft, adSets: adSets}, nil
}

func (u *LaunchUseCase) execute(ctx context.Context, session string, run *launchRun, ticker port.Ticker, in launchInput) {
	defer u.wg.Done()
	defer close(run.done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			u.log.Info("launch aborted", "session", session)
			return
		case <-ticker.C():
		}

		u.mu.Lock()
		next, err := run.state.Apply(domain.LaunchTick)
		if err == nil {
			run.state = next
		}
		u.mu.Unlock()
		if err != nil {
			u.log.Error("launch tick rejected", "session", session, "error", err)
			return
		}
		u.log.Debug("launch phase", "session", session, "phase", next.CurrentPhase(), "progress", next.Progress)
		if next.Status == domain.LaunchCompleted {
			break
		}
	}
	ticker.Stop()

	// The campaign is persisted even when the launch is aborted from here on.
	campaign, err := u.finalize(context.WithoutCancel(ctx), session, in)

	u.mu.Lock()
	if err != nil {
		run.err = err.Error()
	} else {
		run.campaign = &campaign
	}
	u.mu.Unlock()
	if err != nil {
		u.log.Error("launch finalization failed", "session", session, "error", err)
		return
	}

	select {
	case <-u.clock.After(u.completionDelay):
		u.mu.Lock()
		run.navigate = true
		u.mu.Unlock()
	case <-ctx.Done():
	}
}

func (u *LaunchUseCase) finalize(ctx context.Context, session string, in launchInput) (domain.Campaign, error) {
	budget := in.draft.DailyBudget
	if budget <= 0 {
		budget = domain.TotalBudget(in.adSets)
	}
	campaign := domain.NewCampaign(u.ids.NewID(), in.draft.Name, budget, len(in.adSets), u.clock.Now())

	s := NewDraftStore(u.kv, session)
	if err := s.AppendCampaign(ctx, campaign); err != nil {
		return campaign, err
	}
	if err := s.ClearWizard(ctx); err != nil {
		return campaign, err
	}
	u.log.InfoContext(ctx, "campaign launched", "session", session, "campaign_id", campaign.ID, "budget", campaign.Budget)

	if err := u.notifier.CampaignLaunched(ctx, session, campaign); err != nil {
		u.log.WarnContext(ctx, "launch notification failed", "campaign_id", campaign.ID, "error", err)
	}
	return campaign, nil
}

// Status returns a snapshot of the session's launch. Sessions that never
// checked their payment report an idle launch.
func (u *LaunchUseCase) Status(session string) port.LaunchSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	snap := port.LaunchSnapshot{
		LaunchState: domain.NewLaunchState(),
		Phases:      slices.Clone(domain.LaunchPhases),
	}
	run, ok := u.runs[session]
	if !ok {
		return snap
	}
	snap.LaunchState = run.state
	snap.PhaseName = run.state.CurrentPhase()
	snap.Error = run.err
	snap.Navigate = run.navigate
	if run.campaign != nil {
		c := *run.campaign
		snap.Campaign = &c
	}
	return snap
}

// Abort stops the session's launch and waits for its goroutine. An
// unfinished launch is discarded together with its payment check.
func (u *LaunchUseCase) Abort(session string) {
	u.mu.Lock()
	run, ok := u.runs[session]
	u.mu.Unlock()
	if !ok {
		return
	}
	run.cancel()
	<-run.done

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.runs[session] == run && run.state.Status == domain.LaunchRunning {
		delete(u.runs, session)
	}
}

// Wait blocks until the session's launch goroutine has exited or ctx is
// done.
func (u *LaunchUseCase) Wait(ctx context.Context, session string) error {
	u.mu.Lock()
	run, ok := u.runs[session]
	u.mu.Unlock()
	if !ok {
		return nil
	}
	select {
	case <-run.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close aborts every launch and waits for the goroutines to exit.
func (u *LaunchUseCase) Close() {
	u.cancel()
	u.wg.Wait()
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}
