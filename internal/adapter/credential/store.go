// Package credential keeps bcrypt password hashes in the wizard's
// key-value store.
package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campaign-wizard/internal/core/port"
)

const key = "password-hash"

type record struct {
	Hash      string    `json:"hash"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store implements port.PasswordSink. Hashes are kept under a session
// derived from the lower-cased email so they never mix with wizard drafts.
type Store struct {
	kv    port.KeyValue
	clock port.Clock
	cost  int
}

func NewStore(kv port.KeyValue, clock port.Clock) *Store {
	return &Store{kv: kv, clock: clock, cost: bcrypt.DefaultCost}
}

func (s *Store) SetPassword(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	raw, err := json.Marshal(record{Hash: string(hash), UpdatedAt: s.clock.Now()})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, accountSession(email), key, raw)
}

// Verify reports whether password matches the stored hash. The second
// result is false when no password was ever set for email.
func (s *Store) Verify(ctx context.Context, email, password string) (bool, bool, error) {
	raw, ok, err := s.kv.Get(ctx, accountSession(email), key)
	if err != nil || !ok {
		return false, ok, err
	}
	var r record
	if err = json.Unmarshal(raw, &r); err != nil {
		return false, true, fmt.Errorf("decode credential: %w", err)
	}
	err = bcrypt.CompareHashAndPassword([]byte(r.Hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, true, nil
	}
	if err != nil {
		return false, true, err
	}
	return true, true, nil
}

func accountSession(email string) string {
	return "account:" + strings.ToLower(strings.TrimSpace(email))
}
