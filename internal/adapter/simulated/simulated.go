// Package simulated provides stand-ins for the payment, delivery and
// reporting collaborators. They wait a configured latency on the injected
// clock and then answer from the injected random source or the log.
package simulated

import (
	"context"
	"log/slog"
	"time"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// PaymentVerifier reports a verified payment method with probability
// ratio after latency.
type PaymentVerifier struct {
	clock   port.Clock
	random  port.RandomSource
	latency time.Duration
	ratio   float64
}

func NewPaymentVerifier(clock port.Clock, random port.RandomSource, latency time.Duration, ratio float64) *PaymentVerifier {
	return &PaymentVerifier{clock: clock, random: random, latency: latency, ratio: ratio}
}

func (p *PaymentVerifier) VerifyPayment(ctx context.Context, _ string) (bool, error) {
	if err := sleep(ctx, p.clock, p.latency); err != nil {
		return false, err
	}
	return p.random.Float64() < p.ratio, nil
}

// CodeDelivery writes one-time codes to the log instead of sending mail.
type CodeDelivery struct {
	clock   port.Clock
	latency time.Duration
	log     *slog.Logger
}

func NewCodeDelivery(clock port.Clock, latency time.Duration, log *slog.Logger) *CodeDelivery {
	return &CodeDelivery{clock: clock, latency: latency, log: log}
}

func (d *CodeDelivery) DeliverCode(ctx context.Context, email, code string) error {
	if err := sleep(ctx, d.clock, d.latency); err != nil {
		return err
	}
	d.log.InfoContext(ctx, "one-time code issued", "email", email, "code", code)
	return nil
}

// LogNotifier records launches in the log. It is used when no broker is
// configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) CampaignLaunched(ctx context.Context, session string, c domain.Campaign) error {
	n.log.InfoContext(ctx, "campaign ready for reporting", "session", session, "campaign_id", c.ID, "name", c.Name)
	return nil
}

func sleep(ctx context.Context, clock port.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
