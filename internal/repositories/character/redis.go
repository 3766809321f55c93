package character

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/talentprobe/internal/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key prefixes for Redis
	characterKeyPrefix       = "character:"
	ownerCharactersKeyPrefix = "owner_characters:"
	ownerActiveKeyPrefix     = "owner_active:"

	// maxWatchRetries bounds optimistic transactions on an owner's index
	maxWatchRetries = 5
)

var (
	// ErrCharacterNotFound is returned when a character is not found
	ErrCharacterNotFound = errors.New("character not found")

	// ErrNoActiveCharacter is returned when the owner has not selected a character
	ErrNoActiveCharacter = errors.New("no active character")

	// ErrConcurrentUpdate is returned when an owner's roster kept changing during a transaction
	ErrConcurrentUpdate = errors.New("roster changed concurrently")
)

// Config holds configuration for the Redis character repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func characterKey(characterID string) string {
	return fmt.Sprintf("%s%s", characterKeyPrefix, characterID)
}

func ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("%s%s", ownerCharactersKeyPrefix, ownerID)
}

func ownerActiveKey(ownerID string) string {
	return fmt.Sprintf("%s%s", ownerActiveKeyPrefix, ownerID)
}

// watchOwner runs fn as an optimistic transaction over the given keys,
// retrying while another client modifies them between read and EXEC.
func (r *redisRepository) watchOwner(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return ErrConcurrentUpdate
}

// nameField is the hash field a character name is indexed under.
// Names are unique per owner regardless of case.
func nameField(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SaveCharacter persists a character to Redis
func (r *redisRepository) SaveCharacter(ctx context.Context, input *SaveCharacterInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}

	character := input.Character
	if character.ID == "" {
		return errors.New("character ID cannot be empty")
	}
	if character.OwnerID == "" {
		return errors.New("character owner ID cannot be empty")
	}

	characterJSON, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// One MULTI so a watching transaction never sees the record without its index entry
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(character.ID), characterJSON, 0)
	pipe.HSet(ctx, ownerCharactersKey(character.OwnerID), nameField(character.Name), character.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetCharacter retrieves a character by ID from Redis
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	characterJSON, err := r.client.Get(ctx, characterKey(input.CharacterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var character models.Character
	if err := json.Unmarshal([]byte(characterJSON), &character); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &character, nil
}

// GetCharacterByName retrieves one of an owner's characters by name
func (r *redisRepository) GetCharacterByName(ctx context.Context, input *GetCharacterByNameInput) (*models.Character, error) {
	if input == nil || input.OwnerID == "" || input.Name == "" {
		return nil, errors.New("input, owner ID and name cannot be empty")
	}

	characterID, err := r.client.HGet(ctx, ownerCharactersKey(input.OwnerID), nameField(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to look up character: %w", err)
	}

	return r.GetCharacter(ctx, &GetCharacterInput{
		CharacterID: characterID,
	})
}

// ListCharacters retrieves all characters of an owner sorted by name
func (r *redisRepository) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	characterIDs, err := r.client.HVals(ctx, ownerCharactersKey(input.OwnerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get character IDs for owner: %w", err)
	}

	loaded := make([]*models.Character, len(characterIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, characterID := range characterIDs {
		i, characterID := i, characterID
		g.Go(func() error {
			character, err := r.GetCharacter(gctx, &GetCharacterInput{
				CharacterID: characterID,
			})
			if err != nil {
				if errors.Is(err, ErrCharacterNotFound) {
					// Deleted between reading the index and fetching the record
					return nil
				}
				return fmt.Errorf("failed to get character %s: %w", characterID, err)
			}
			loaded[i] = character
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*models.Character, 0, len(loaded))
	for _, character := range loaded {
		if character != nil {
			characters = append(characters, character)
		}
	}

	sort.Slice(characters, func(i, j int) bool {
		return strings.ToLower(characters[i].Name) < strings.ToLower(characters[j].Name)
	})

	return &ListCharactersOutput{
		Characters: characters,
	}, nil
}

// DeleteCharacter removes one of an owner's characters from Redis
func (r *redisRepository) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error {
	if input == nil || input.OwnerID == "" || input.Name == "" {
		return errors.New("input, owner ID and name cannot be empty")
	}

	ownerKey := ownerCharactersKey(input.OwnerID)
	activeKey := ownerActiveKey(input.OwnerID)

	return r.watchOwner(ctx, func(tx *redis.Tx) error {
		characterID, err := tx.HGet(ctx, ownerKey, nameField(input.Name)).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrCharacterNotFound
			}
			return fmt.Errorf("failed to look up character: %w", err)
		}

		activeID, err := tx.Get(ctx, activeKey).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get active character: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, characterKey(characterID))
			pipe.HDel(ctx, ownerKey, nameField(input.Name))
			if activeID == characterID {
				pipe.Del(ctx, activeKey)
			}
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to delete character: %w", err)
		}
		return err
	}, ownerKey, activeKey)
}

// SetActiveCharacter marks the character the owner is currently playing
func (r *redisRepository) SetActiveCharacter(ctx context.Context, input *SetActiveCharacterInput) error {
	if input == nil || input.OwnerID == "" || input.CharacterID == "" {
		return errors.New("input, owner ID and character ID cannot be empty")
	}

	if err := r.client.Set(ctx, ownerActiveKey(input.OwnerID), input.CharacterID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set active character: %w", err)
	}

	return nil
}

// GetActiveCharacter retrieves the character the owner is currently playing
func (r *redisRepository) GetActiveCharacter(ctx context.Context, input *GetActiveCharacterInput) (*models.Character, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	characterID, err := r.client.Get(ctx, ownerActiveKey(input.OwnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActiveCharacter
		}
		return nil, fmt.Errorf("failed to get active character: %w", err)
	}

	character, err := r.GetCharacter(ctx, &GetCharacterInput{
		CharacterID: characterID,
	})
	if errors.Is(err, ErrCharacterNotFound) {
		return nil, ErrNoActiveCharacter
	}
	return character, err
}

// ReplaceCharacters swaps an owner's whole roster in one transaction
func (r *redisRepository) ReplaceCharacters(ctx context.Context, input *ReplaceCharactersInput) error {
	if input == nil || input.OwnerID == "" {
		return errors.New("input and owner ID cannot be empty")
	}

	payloads := make(map[string][]byte, len(input.Characters))
	for _, character := range input.Characters {
		if character == nil || character.ID == "" {
			return errors.New("character and character ID cannot be empty")
		}
		if character.OwnerID != input.OwnerID {
			return fmt.Errorf("character %s belongs to another owner", character.ID)
		}

		characterJSON, err := json.Marshal(character)
		if err != nil {
			return fmt.Errorf("failed to marshal character: %w", err)
		}
		payloads[character.ID] = characterJSON
	}

	ownerKey := ownerCharactersKey(input.OwnerID)
	activeKey := ownerActiveKey(input.OwnerID)

	return r.watchOwner(ctx, func(tx *redis.Tx) error {
		oldIDs, err := tx.HVals(ctx, ownerKey).Result()
		if err != nil {
			return fmt.Errorf("failed to get character IDs for owner: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, characterID := range oldIDs {
				pipe.Del(ctx, characterKey(characterID))
			}
			pipe.Del(ctx, ownerKey)

			for _, character := range input.Characters {
				pipe.Set(ctx, characterKey(character.ID), payloads[character.ID], 0)
				pipe.HSet(ctx, ownerKey, nameField(character.Name), character.ID)
			}

			if input.ActiveCharacterID != "" {
				pipe.Set(ctx, activeKey, input.ActiveCharacterID, 0)
			} else {
				pipe.Del(ctx, activeKey)
			}
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to replace characters: %w", err)
		}
		return err
	}, ownerKey)
}
