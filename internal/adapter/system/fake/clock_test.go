package fake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAfterFiresOnAdvance(t *testing.T) {
	c := NewClock(epoch)
	ch := c.After(2 * time.Second)

	c.Advance(time.Second)
	select {
	case <-ch:
		t.Fatal("timer fired early")
	default:
	}

	c.Advance(time.Second)
	select {
	case at := <-ch:
		assert.Equal(t, epoch.Add(2*time.Second), at)
	default:
		t.Fatal("timer did not fire")
	}

	select {
	case <-c.After(0):
	default:
		t.Fatal("zero duration must fire immediately")
	}
}

func TestTickerDeliversEveryPeriod(t *testing.T) {
	c := NewClock(epoch)
	tk := c.NewTicker(time.Second)

	got := make(chan time.Time, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3; i++ {
			got <- <-tk.C()
		}
	}()

	c.Advance(3 * time.Second)
	<-done
	require.Len(t, got, 3)
	assert.Equal(t, epoch.Add(time.Second), <-got)

	tk.Stop()
	c.Advance(5 * time.Second) // must not block on a stopped ticker
}

func TestRandomReplaysSequences(t *testing.T) {
	r := NewRandom([]int{5, 1_000_003}, []float64{0.25})
	assert.Equal(t, 5, r.IntN(10))
	assert.Equal(t, 3, r.IntN(10))
	assert.Equal(t, 5, r.IntN(10))
	assert.Equal(t, 0.25, r.Float64())
	assert.Equal(t, 0.25, r.Float64())

	assert.Zero(t, NewRandom(nil, nil).IntN(7))

	ids := NewIDs("c")
	assert.Equal(t, "c-1", ids.NewID())
	assert.Equal(t, "c-2", ids.NewID())
}
