package cards

import (
	"context"
	"fmt"
	"sync"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	cards map[string]*entities.Card
	pools map[string][]*entities.Card
}

// NewInMemoryRepository creates a new in-memory catalog cache
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		cards: make(map[string]*entities.Card),
		pools: make(map[string][]*entities.Card),
	}
}

func poolName(side entities.Side, kind entities.PoolKind) string {
	return fmt.Sprintf("%s:%s", side, kind)
}

// SetCatalog stores the full card list, replacing pool membership
func (r *inMemoryRepository) SetCatalog(ctx context.Context, catalog []*entities.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = make(map[string]*entities.Card, len(catalog))
	r.pools = make(map[string][]*entities.Card)

	for _, card := range catalog {
		r.cards[card.Code] = card
		name := poolName(card.Side, KindOf(card))
		r.pools[name] = append(r.pools[name], card)
	}

	return nil
}

// GetPool returns a cached pool, or ErrPoolNotCached
func (r *inMemoryRepository) GetPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pool, ok := r.pools[poolName(side, kind)]
	if !ok || len(pool) == 0 {
		return nil, ErrPoolNotCached
	}

	// Return a copy so callers can shuffle freely
	poolCopy := make([]*entities.Card, len(pool))
	copy(poolCopy, pool)
	return poolCopy, nil
}

// GetCard returns a cached card by code, or ErrCardNotFound
func (r *inMemoryRepository) GetCard(ctx context.Context, code string) (*entities.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[code]
	if !ok {
		return nil, ErrCardNotFound
	}

	return card, nil
}
