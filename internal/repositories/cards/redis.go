package cards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// catalogTTL bounds staleness of the cached card list; NetrunnerDB data
// changes rarely enough that a daily refetch is plenty
const catalogTTL = 24 * time.Hour

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a catalog cache backed by Redis. Card JSON lives at
// card:{code}; pool membership lives in sets at pool:{side}:{kind}.
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{
		client: client,
	}
}

func cardKey(code string) string {
	return fmt.Sprintf("card:%s", code)
}

func poolKey(side entities.Side, kind entities.PoolKind) string {
	return fmt.Sprintf("pool:%s:%s", side, kind)
}

// SetCatalog stores the full card list, replacing pool membership
func (r *redisRepo) SetCatalog(ctx context.Context, catalog []*entities.Card) error {
	pipe := r.client.Pipeline()

	for _, side := range entities.Sides() {
		for _, kind := range []entities.PoolKind{entities.PoolIdentities, entities.PoolCards} {
			pipe.Del(ctx, poolKey(side, kind))
		}
	}

	for _, card := range catalog {
		data, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("failed to marshal card %s: %w", card.Code, err)
		}
		pipe.Set(ctx, cardKey(card.Code), string(data), catalogTTL)
		pipe.SAdd(ctx, poolKey(card.Side, KindOf(card)), card.Code)
	}

	for _, side := range entities.Sides() {
		for _, kind := range []entities.PoolKind{entities.PoolIdentities, entities.PoolCards} {
			pipe.Expire(ctx, poolKey(side, kind), catalogTTL)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store catalog in Redis: %w", err)
	}

	return nil
}

// GetPool returns a cached pool, or ErrPoolNotCached
func (r *redisRepo) GetPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error) {
	codes, err := r.client.SMembers(ctx, poolKey(side, kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool members from Redis: %w", err)
	}
	if len(codes) == 0 {
		return nil, ErrPoolNotCached
	}

	pool := make([]*entities.Card, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			card, err := r.GetCard(ctx, code)
			if err != nil {
				return fmt.Errorf("failed to get card %s: %w", code, err)
			}
			pool[i] = card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// A pool set whose card keys expired is a miss, not corruption
		if errors.Is(err, ErrCardNotFound) {
			return nil, ErrPoolNotCached
		}
		return nil, err
	}

	return pool, nil
}

// GetCard returns a cached card by code, or ErrCardNotFound
func (r *redisRepo) GetCard(ctx context.Context, code string) (*entities.Card, error) {
	data, err := r.client.Get(ctx, cardKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card from Redis: %w", err)
	}

	var card entities.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card data: %w", err)
	}

	return &card, nil
}
