package state

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// StateManager records the progress of a batch run for operators. It is
// write-only: runs never resume from it.
type StateManager interface {
	StartRun(ctx context.Context, runID string, totalPages int) error
	SetProcessedPages(ctx context.Context, runID string, processed int) error
	FinishRun(ctx context.Context, runID string, status RunStatus, runErr error) error
}

type redisStateManager struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStateManager(redisClient *redis.Client, keyPrefix string) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

func (s *redisStateManager) key(runID string) string {
	return s.keyPrefix + runID
}

func (s *redisStateManager) StartRun(ctx context.Context, runID string, totalPages int) error {
	err := s.redisClient.HSet(ctx, s.key(runID),
		"status", string(RunStatusRunning),
		"total_pages", totalPages,
		"processed_pages", 0,
		"started_at", time.Now().UTC().Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to record start of run %s: %w", runID, err)
	}
	return nil
}

func (s *redisStateManager) SetProcessedPages(ctx context.Context, runID string, processed int) error {
	err := s.redisClient.HSet(ctx, s.key(runID), "processed_pages", processed).Err()
	if err != nil {
		return fmt.Errorf("failed to record progress of run %s: %w", runID, err)
	}
	return nil
}

func (s *redisStateManager) FinishRun(ctx context.Context, runID string, status RunStatus, runErr error) error {
	values := []interface{}{
		"status", string(status),
		"finished_at", time.Now().UTC().Format(time.RFC3339),
	}
	if runErr != nil {
		values = append(values, "error", runErr.Error())
	}

	if err := s.redisClient.HSet(ctx, s.key(runID), values...).Err(); err != nil {
		return fmt.Errorf("failed to record end of run %s: %w", runID, err)
	}
	return nil
}

type noopStateManager struct{}

// NewNoopStateManager is used when Redis is disabled
func NewNoopStateManager() StateManager {
	return noopStateManager{}
}

func (noopStateManager) StartRun(ctx context.Context, runID string, totalPages int) error {
	return nil
}

func (noopStateManager) SetProcessedPages(ctx context.Context, runID string, processed int) error {
	return nil
}

func (noopStateManager) FinishRun(ctx context.Context, runID string, status RunStatus, runErr error) error {
	return nil
}
