package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	_, ok, err := kv.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`{"a":1}`)
	require.NoError(t, kv.Set(ctx, "s1", "k", value))
	value[0] = 'X' // caller mutation must not leak into the store

	got, ok, err := kv.Get(ctx, "s1", "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))

	_, ok, _ = kv.Get(ctx, "s2", "k")
	assert.False(t, ok, "sessions are isolated")

	require.NoError(t, kv.Set(ctx, "s1", "k", []byte("2")))
	got, _, _ = kv.Get(ctx, "s1", "k")
	assert.Equal(t, "2", string(got), "last write wins")

	require.NoError(t, kv.Delete(ctx, "s1", "k"))
	require.NoError(t, kv.Delete(ctx, "s1", "k"))
	_, ok, _ = kv.Get(ctx, "s1", "k")
	assert.False(t, ok)
}

func TestKVConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kv.Set(ctx, "s", "k", []byte("v"))
			_, _, _ = kv.Get(ctx, "s", "k")
		}()
	}
	wg.Wait()

	got, ok, err := kv.Get(ctx, "s", "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", string(got))
}
