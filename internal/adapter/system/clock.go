package system

import (
	"time"

	"campaign-wizard/internal/core/port"
)

// Clock is the runtime clock backed by package time.
type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

func (Clock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (Clock) NewTicker(d time.Duration) port.Ticker {
	return ticker{time.NewTicker(d)}
}

type ticker struct {
	t *time.Ticker
}

func (t ticker) C() <-chan time.Time { return t.t.C }
func (t ticker) Stop()               { t.t.Stop() }
