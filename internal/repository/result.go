package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
	List(ctx context.Context) ([]*entity.GameResult, error)
}

type dbResult struct {
	client  *redis.Client
	channel string
}

// NewResultRepository stores results in Redis and announces each one on
// channel. An empty channel disables publishing.
// The feed is write-only for this process: nothing at startup reads it back,
// and the scoreboard must always start empty.
func NewResultRepository(client *redis.Client, channel string) ResultRepository {
	return &dbResult{
		client:  client,
		channel: channel,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.RPush(ctx, resultsListKey, result.ID)

		if that.channel != "" {
			pipe.Publish(ctx, that.channel, resultJSON)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game result by id: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
	}

	return &result, nil
}

// List returns every stored result in the order it was saved.
func (that *dbResult) List(ctx context.Context) ([]*entity.GameResult, error) {
	ids, err := that.client.LRange(ctx, resultsListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game results: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(ids))
	for _, id := range ids {
		result, err := that.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load game result %s: %w", id, err)
		}

		results = append(results, result)
	}

	return results, nil
}
