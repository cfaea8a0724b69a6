package port

import (
	"context"
	"time"

	"campaign-wizard/internal/core/domain"
)

// Clock supplies the current time and the timers that drive launch
// phases and simulated latencies.
type Clock interface {
	Now() time.Time
	// After delivers the time once d has elapsed.
	After(d time.Duration) <-chan time.Time
	// NewTicker delivers the time every d until stopped.
	NewTicker(d time.Duration) Ticker
}

// Ticker is a periodic timer created by a Clock.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RandomSource supplies randomness for codes, projections and simulated
// outcomes.
type RandomSource interface {
	// IntN returns a value in [0,n).
	IntN(n int) int
	// Float64 returns a value in [0,1).
	Float64() float64
}

// IDGenerator creates identifiers for campaigns, media and reset sessions.
type IDGenerator interface {
	NewID() string
}

// PaymentVerifier reports whether the session owner has a usable payment
// method. It is invoked on demand and may be retried freely.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, session string) (bool, error)
}

// CodeDelivery sends a one-time code to an email address out of band.
type CodeDelivery interface {
	DeliverCode(ctx context.Context, email, code string) error
}

// PasswordSink receives the new password at the end of a reset.
type PasswordSink interface {
	SetPassword(ctx context.Context, email, password string) error
}

// LaunchNotifier tells the reporting collaborator about a new campaign so
// it can start collecting performance counters.
type LaunchNotifier interface {
	CampaignLaunched(ctx context.Context, session string, campaign domain.Campaign) error
}
