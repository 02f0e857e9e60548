package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

const stateKeyPrefix = "moviehub:state:"

// RedisClient keeps the per-chat browse state.
type RedisClient struct {
	client   *redis.Client
	stateTTL time.Duration
}

func NewRedisClient(addr string, password string, db int, stateTTL time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisClient{client: client, stateTTL: stateTTL}, nil
}

func stateKey(chatID int64) string {
	return stateKeyPrefix + strconv.FormatInt(chatID, 10)
}

func (r *RedisClient) SaveState(ctx context.Context, chatID int64, state model.BrowseState) error {
	data, err := json.Marshal(state)
	if err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error marshaling state")
		return err
	}
	return r.client.Set(ctx, stateKey(chatID), data, r.stateTTL).Err()
}

// GetState returns nil, nil when the chat has no state or it has expired.
func (r *RedisClient) GetState(ctx context.Context, chatID int64) (*model.BrowseState, error) {
	data, err := r.client.Get(ctx, stateKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error getting state")
		return nil, err
	}

	var state model.BrowseState
	if err := json.Unmarshal(data, &state); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error unmarshaling state")
		return nil, err
	}
	return &state, nil
}

func (r *RedisClient) DeleteState(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, stateKey(chatID)).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
