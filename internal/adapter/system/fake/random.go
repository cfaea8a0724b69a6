package fake

import (
	"fmt"
	"sync"
)

// Random replays fixed sequences. Each sequence wraps around when
// exhausted; an empty sequence yields zero.
type Random struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	i, f   int
}

// NewRandom returns a source replaying ints for IntN and floats for
// Float64. IntN reduces each value modulo n.
func NewRandom(ints []int, floats []float64) *Random {
	return &Random{ints: ints, floats: floats}
}

func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

// IDs returns prefix-1, prefix-2, ...
type IDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewIDs(prefix string) *IDs {
	return &IDs{prefix: prefix}
}

func (g *IDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
