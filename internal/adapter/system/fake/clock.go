// Package fake provides deterministic clock, randomness and id sources for
// tests.
package fake

import (
	"fmt"
	"sync"
	"time"

	"campaign-wizard/internal/core/port"
)

// Clock is a manually advanced clock. Tickers created from it deliver one
// tick per elapsed period and block Advance until the tick is received,
// so no tick is ever dropped.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*timer
	tickers []*Ticker
}

type timer struct {
	at time.Time
	c  chan time.Time
}

// NewClock returns a clock reading now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.now
		return ch
	}
	c.timers = append(c.timers, &timer{at: c.now.Add(d), c: ch})
	return ch
}

func (c *Clock) NewTicker(d time.Duration) port.Ticker {
	if d <= 0 {
		panic(fmt.Sprintf("fake: non-positive ticker period %v", d))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &Ticker{
		c:       make(chan time.Time),
		period:  d,
		next:    c.now.Add(d),
		stopped: make(chan struct{}),
	}
	c.tickers = append(c.tickers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers and delivering
// due ticks in order.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	pending := c.timers[:0]
	for _, t := range c.timers {
		if t.at.After(now) {
			pending = append(pending, t)
			continue
		}
		t.c <- t.at
	}
	c.timers = pending

	type tick struct {
		t  *Ticker
		at time.Time
	}
	var ticks []tick
	live := c.tickers[:0]
	for _, t := range c.tickers {
		if t.isStopped() {
			continue
		}
		live = append(live, t)
		for !t.next.After(now) {
			ticks = append(ticks, tick{t: t, at: t.next})
			t.next = t.next.Add(t.period)
		}
	}
	c.tickers = live
	c.mu.Unlock()

	for _, tk := range ticks {
		select {
		case tk.t.c <- tk.at:
		case <-tk.t.stopped:
		}
	}
}

// Ticker is a ticker driven by Clock.Advance.
type Ticker struct {
	c       chan time.Time
	period  time.Duration
	next    time.Time
	stopped chan struct{}
	once    sync.Once
}

func (t *Ticker) C() <-chan time.Time { return t.c }

func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

func (t *Ticker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
