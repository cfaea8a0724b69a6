package configs

import "time"

// Wizard tunes the timer-driven parts of the wizard. Latencies emulate the
// round trips of external collaborators and may be set to zero in
// development to make the flows instantaneous.
type Wizard struct {
	// PhaseInterval is the clock tick that advances one launch phase.
	PhaseInterval time.Duration `env:"PHASE_INTERVAL" envDefault:"1s"`
	// OTPSendLatency is how long the simulated delivery takes to send a code.
	OTPSendLatency time.Duration `env:"OTP_SEND_LATENCY" envDefault:"2s"`
	// OTPVerifyLatency is the pause before a submitted code is compared.
	OTPVerifyLatency time.Duration `env:"OTP_VERIFY_LATENCY" envDefault:"1s"`
	// PaymentLatency is how long the simulated payment check takes.
	PaymentLatency time.Duration `env:"PAYMENT_LATENCY" envDefault:"2s"`
	// PaymentVerifiedRatio is the probability in [0,1] that the simulated
	// payment check reports a verified payment method.
	PaymentVerifiedRatio float64 `env:"PAYMENT_VERIFIED_RATIO" envDefault:"0.7"`
	// CompletionDelay is how long a completed launch waits before it tells
	// the client to move on to the dashboard.
	CompletionDelay time.Duration `env:"COMPLETION_DELAY" envDefault:"3s"`
	// ResetTTL is how long an untouched password reset is kept.
	ResetTTL time.Duration `env:"RESET_TTL" envDefault:"15m"`
}
