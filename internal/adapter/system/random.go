package system

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Random draws from the runtime's ChaCha8-seeded generator.
type Random struct{}

func (Random) IntN(n int) int   { return rand.IntN(n) }
func (Random) Float64() float64 { return rand.Float64() }

// UUIDGenerator creates random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
