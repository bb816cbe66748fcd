package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSequencer(t *testing.T) (*Sequencer, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return CreateSequencer(client), mr
}

func TestSequencer_Next(t *testing.T) {
	sequencer, _ := newTestSequencer(t)
	ctx := context.Background()

	first, err := sequencer.Next(ctx, "live", 0)
	require.NoError(t, err)
	second, err := sequencer.Next(ctx, "live", 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestSequencer_NextRespectsFloor(t *testing.T) {
	sequencer, _ := newTestSequencer(t)
	ctx := context.Background()

	seq, err := sequencer.Next(ctx, "live", 41)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)

	seq, err = sequencer.Next(ctx, "live", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(43), seq)
}

func TestSequencer_ModesAreIndependent(t *testing.T) {
	sequencer, mr := newTestSequencer(t)
	ctx := context.Background()

	_, err := sequencer.Next(ctx, "live", 5)
	require.NoError(t, err)
	seq, err := sequencer.Next(ctx, "test", 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), seq)
	live, err := mr.Get(keyPrefix + "live")
	require.NoError(t, err)
	assert.Equal(t, "6", live)
}

func TestSequencer_Unavailable(t *testing.T) {
	sequencer, mr := newTestSequencer(t)
	mr.Close()

	_, err := sequencer.Next(context.Background(), "live", 0)
	assert.Error(t, err)
}
