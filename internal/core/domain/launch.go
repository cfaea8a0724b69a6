package domain

import "fmt"

// LaunchPhases are the named steps of the launch sequence in execution
// order.
var LaunchPhases = []string{
	"Validating campaign settings",
	"Optimizing ad creatives",
	"Setting up targeting parameters",
	"Configuring budget allocation",
	"Submitting for platform review",
	"Launched",
}

// LaunchStatus is the coarse state of a launch.
type LaunchStatus string

const (
	LaunchIdle      LaunchStatus = "idle"
	LaunchRunning   LaunchStatus = "running"
	LaunchCompleted LaunchStatus = "completed"
)

// LaunchEvent is an input to the launch state machine.
type LaunchEvent int

const (
	LaunchPaymentVerified LaunchEvent = iota + 1
	LaunchPaymentRejected
	LaunchStart
	LaunchTick
)

func (e LaunchEvent) String() string {
	switch e {
	case LaunchPaymentVerified:
		return "payment-verified"
	case LaunchPaymentRejected:
		return "payment-rejected"
	case LaunchStart:
		return "start"
	case LaunchTick:
		return "tick"
	default:
		return "unknown"
	}
}

// LaunchState is the observable state of a launch. Phase indexes
// LaunchPhases and is meaningful once the launch has started.
type LaunchState struct {
	Status          LaunchStatus `json:"status"`
	PaymentVerified bool         `json:"payment_verified"`
	Phase           int          `json:"phase"`
	Progress        float64      `json:"progress"`
}

// NewLaunchState returns an idle launch with an unverified payment method.
func NewLaunchState() LaunchState {
	return LaunchState{Status: LaunchIdle}
}

// CurrentPhase names the visible phase, or "" before the launch starts.
func (s LaunchState) CurrentPhase() string {
	if s.Status == LaunchIdle {
		return ""
	}
	return LaunchPhases[s.Phase]
}

// Apply is the transition function of the launch. Starting without a
// verified payment method returns ErrGateBlocked and leaves the state
// untouched. Each tick moves to the next phase; the last phase completes
// the launch at exactly 100 percent and uses up the payment verification,
// so starting again after completion is blocked as well.
func (s LaunchState) Apply(ev LaunchEvent) (LaunchState, error) {
	switch {
	case s.Status == LaunchIdle && ev == LaunchPaymentVerified:
		s.PaymentVerified = true
		return s, nil

	case s.Status == LaunchIdle && ev == LaunchPaymentRejected:
		s.PaymentVerified = false
		return s, nil

	case s.Status == LaunchCompleted && ev == LaunchStart:
		return s, ErrGateBlocked

	case s.Status == LaunchIdle && ev == LaunchStart:
		if !s.PaymentVerified {
			return s, ErrGateBlocked
		}
		s.Status = LaunchRunning
		s.Phase = 0
		s.Progress = 0
		return s, nil

	case s.Status == LaunchRunning && ev == LaunchTick:
		s.Phase++
		s.Progress = progressAt(s.Phase)
		if s.Phase == len(LaunchPhases)-1 {
			s.Status = LaunchCompleted
			s.PaymentVerified = false
		}
		return s, nil
	}
	return s, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, ev, s.Status)
}

func progressAt(phase int) float64 {
	last := len(LaunchPhases) - 1
	if phase >= last {
		return 100
	}
	return float64(phase) * 100 / float64(last)
}
