package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// PasswordResetUseCase keeps password resets in memory and applies the
// domain.OtpSession transitions to them. Codes are generated here and
// handed to the delivery collaborator; they never leave the process
// otherwise. A reset is forgotten once it is done or after it has been
// idle for the configured TTL.
type PasswordResetUseCase struct {
	clock    port.Clock
	random   port.RandomSource
	ids      port.IDGenerator
	delivery port.CodeDelivery
	sink     port.PasswordSink
	log      *slog.Logger

	verifyLatency time.Duration
	ttl           time.Duration

	mu       sync.Mutex
	sessions map[string]resetEntry
	locks    sessionLocks
}

type resetEntry struct {
	session   domain.OtpSession
	updatedAt time.Time
}

// DefaultResetTTL applies when no positive TTL is configured.
const DefaultResetTTL = 15 * time.Minute

func NewPasswordResetUseCase(
	clock port.Clock,
	random port.RandomSource,
	ids port.IDGenerator,
	delivery port.CodeDelivery,
	sink port.PasswordSink,
	verifyLatency time.Duration,
	ttl time.Duration,
	log *slog.Logger,
) *PasswordResetUseCase {
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	return &PasswordResetUseCase{
		clock:         clock,
		random:        random,
		ids:           ids,
		delivery:      delivery,
		sink:          sink,
		log:           log,
		verifyLatency: verifyLatency,
		ttl:           ttl,
		sessions:      make(map[string]resetEntry),
	}
}

var _ port.PasswordResetUseCase = (*PasswordResetUseCase)(nil)

// Start opens a reset and sends the first code to email. Expired resets
// are swept first.
func (u *PasswordResetUseCase) Start(ctx context.Context, email string) (string, domain.OtpSession, error) {
	u.sweep()
	id := u.ids.NewID()
	defer u.locks.lock(id)()

	s, err := u.sendCode(ctx, domain.NewOtpSession(), domain.OtpSubmitEmail, email)
	if err != nil {
		return "", s, err
	}
	u.put(id, s)
	u.log.InfoContext(ctx, "password reset started", "reset_id", id)
	return id, s, nil
}

func (u *PasswordResetUseCase) Session(id string) (domain.OtpSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	e, ok := u.sessions[id]
	if ok && u.expired(e) {
		delete(u.sessions, id)
		ok = false
	}
	if !ok {
		return domain.OtpSession{}, fmt.Errorf("password reset %q: %w", id, domain.ErrNotFound)
	}
	return e.session, nil
}

func (u *PasswordResetUseCase) SubmitEmail(ctx context.Context, id, email string) (domain.OtpSession, error) {
	return u.update(ctx, id, func(s domain.OtpSession) (domain.OtpSession, error) {
		return u.sendCode(ctx, s, domain.OtpSubmitEmail, email)
	})
}

// Resend issues a new code. The previous code stops matching.
func (u *PasswordResetUseCase) Resend(ctx context.Context, id string) (domain.OtpSession, error) {
	return u.update(ctx, id, func(s domain.OtpSession) (domain.OtpSession, error) {
		return u.sendCode(ctx, s, domain.OtpResend, s.Email)
	})
}

// SubmitCode compares code with the issued one after the verification
// latency. A mismatch returns the session with its error message set and
// an error matching domain.ErrVerification.
func (u *PasswordResetUseCase) SubmitCode(ctx context.Context, id, code string) (domain.OtpSession, error) {
	return u.update(ctx, id, func(s domain.OtpSession) (domain.OtpSession, error) {
		if err := u.wait(ctx, u.verifyLatency); err != nil {
			return s, err
		}
		return s.Apply(domain.OtpEvent{Kind: domain.OtpSubmitCode, Code: code})
	})
}

// SubmitPassword finishes the reset. The new password reaches the sink
// only when both entries match and satisfy the length rules. A finished
// reset is forgotten.
func (u *PasswordResetUseCase) SubmitPassword(ctx context.Context, id, password, confirm string) (domain.OtpSession, error) {
	return u.update(ctx, id, func(s domain.OtpSession) (domain.OtpSession, error) {
		next, err := s.Apply(domain.OtpEvent{Kind: domain.OtpSubmitPassword, Password: password, Confirm: confirm})
		if err != nil {
			return next, err
		}
		if err = u.sink.SetPassword(ctx, next.Email, password); err != nil {
			return s, fmt.Errorf("set password: %w", err)
		}
		u.log.InfoContext(ctx, "password reset completed", "reset_id", id)
		return next, nil
	})
}

func (u *PasswordResetUseCase) Back(ctx context.Context, id string) (domain.OtpSession, error) {
	return u.update(ctx, id, func(s domain.OtpSession) (domain.OtpSession, error) {
		return s.Apply(domain.OtpEvent{Kind: domain.OtpBack})
	})
}

// update applies fn to the stored session and stores the result, including
// states carrying a user-facing error. Failures that are not part of the
// flow, such as delivery or storage errors, leave the session untouched.
func (u *PasswordResetUseCase) update(ctx context.Context, id string, fn func(domain.OtpSession) (domain.OtpSession, error)) (domain.OtpSession, error) {
	defer u.locks.lock(id)()

	cur, err := u.Session(id)
	if err != nil {
		return cur, err
	}
	next, err := fn(cur)
	if err != nil && !isFlowError(err) {
		return cur, err
	}
	u.put(id, next)
	return next, err
}

func (u *PasswordResetUseCase) sendCode(ctx context.Context, s domain.OtpSession, kind domain.OtpEventKind, email string) (domain.OtpSession, error) {
	code := domain.GenerateOtpCode(u.random.IntN)
	next, err := s.Apply(domain.OtpEvent{Kind: kind, Email: email, Code: code})
	if err != nil {
		return next, err
	}
	if err = u.delivery.DeliverCode(ctx, next.Email, code); err != nil {
		return s, fmt.Errorf("deliver code: %w", err)
	}
	return next, nil
}

func (u *PasswordResetUseCase) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-u.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// put stores s, or drops the reset once it is done.
func (u *PasswordResetUseCase) put(id string, s domain.OtpSession) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s.Step == domain.OtpDone {
		delete(u.sessions, id)
		return
	}
	u.sessions[id] = resetEntry{session: s, updatedAt: u.clock.Now()}
}

func (u *PasswordResetUseCase) sweep() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, e := range u.sessions {
		if u.expired(e) {
			delete(u.sessions, id)
		}
	}
}

func (u *PasswordResetUseCase) expired(e resetEntry) bool {
	return !u.clock.Now().Before(e.updatedAt.Add(u.ttl))
}

func isFlowError(err error) bool {
	return errors.Is(err, domain.ErrVerification) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidTransition)
}
