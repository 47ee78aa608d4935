package queue

import (
	"context"
	"fmt"

	"panduit/scraper/internal/config"
	"panduit/scraper/internal/domain/task"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Queue interface {
	AddTask(ctx context.Context, task task.Task) (string, error) // Returns message ID
}

type RedisQueue struct {
	redisClient  *redis.Client
	streamPrefix string
}

func NewRedisQueue(redisClient *redis.Client, cfg config.RedisConfig) Queue {
	return &RedisQueue{
		redisClient:  redisClient,
		streamPrefix: cfg.StreamPrefix,
	}
}

// StreamName returns the stream a task type is published to
func (q *RedisQueue) StreamName(taskType string) string {
	return q.streamPrefix + taskType
}

func (q *RedisQueue) AddTask(ctx context.Context, task task.Task) (string, error) {
	// Get task type to determine stream name
	taskType := task.TaskType()
	streamName := q.StreamName(taskType)

	// Serialize task to JSON
	taskValue, err := task.TaskValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize task: %w", err)
	}

	// Fields: task_type, task_data
	messageID, err := q.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"task_type": taskType,
			"task_data": string(taskValue),
		},
	}).Result()

	if err != nil {
		return "", fmt.Errorf("failed to add task to Redis stream %s: %w", streamName, err)
	}

	log.Debugf("Added task %s to stream %s with message ID: %s", taskType, streamName, messageID)
	return messageID, nil
}

type noopQueue struct{}

// NewNoopQueue is used when the Redis sink is disabled
func NewNoopQueue() Queue {
	return noopQueue{}
}

func (noopQueue) AddTask(ctx context.Context, task task.Task) (string, error) {
	return "", nil
}
