package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStateManagerKey(t *testing.T) {
	s := &redisStateManager{keyPrefix: "panduit:run:"}
	assert.Equal(t, "panduit:run:abc", s.key("abc"))
}

func TestRedisStateManagerErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	s := NewRedisStateManager(client, "panduit:run:")
	ctx := context.Background()

	err := s.StartRun(ctx, "run-1", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start of run run-1")

	err = s.SetProcessedPages(ctx, "run-1", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress of run run-1")

	err = s.FinishRun(ctx, "run-1", RunStatusFailed, errors.New("boom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of run run-1")
}

func TestNoopStateManager(t *testing.T) {
	s := NewNoopStateManager()
	ctx := context.Background()

	assert.NoError(t, s.StartRun(ctx, "run-1", 1))
	assert.NoError(t, s.SetProcessedPages(ctx, "run-1", 1))
	assert.NoError(t, s.FinishRun(ctx, "run-1", RunStatusCompleted, nil))
}
