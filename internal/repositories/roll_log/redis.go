package roll_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/talentprobe/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	rollLogKeyPrefix = "roll_log:"

	// DefaultMaxEntries is the log length kept per owner when none is configured
	DefaultMaxEntries = 100
)

// Config holds configuration for the Redis roll log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxEntries is the number of entries kept per owner
	MaxEntries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxEntries int
}

// NewRedis creates a new Redis-backed roll log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.MaxEntries < 0 {
		return nil, errors.New("max entries cannot be negative")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxEntries: maxEntries,
	}, nil
}

func rollLogKey(ownerID string) string {
	return fmt.Sprintf("%s%s", rollLogKeyPrefix, ownerID)
}

// AddEntry prepends an entry to the owner's log
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}
	if entry.OwnerID == "" {
		return errors.New("entry owner ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal roll log entry: %w", err)
	}

	key := rollLogKey(entry.OwnerID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, entryJSON)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add roll log entry: %w", err)
	}

	return nil
}

// GetEntries retrieves the newest entries of an owner's log
func (r *redisRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}
	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	entriesJSON, err := r.client.LRange(ctx, rollLogKey(input.OwnerID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll log: %w", err)
	}

	entries := make([]*models.RollLogEntry, 0, len(entriesJSON))
	for _, entryJSON := range entriesJSON {
		var entry models.RollLogEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &GetEntriesOutput{
		Entries: entries,
	}, nil
}

// ClearEntries removes an owner's whole log
func (r *redisRepository) ClearEntries(ctx context.Context, input *ClearEntriesInput) error {
	if input == nil || input.OwnerID == "" {
		return errors.New("input and owner ID cannot be empty")
	}

	if err := r.client.Del(ctx, rollLogKey(input.OwnerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear roll log: %w", err)
	}

	return nil
}
