package cards

import (
	"context"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// RepositoryError is a sentinel error returned by catalog cache operations
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	// ErrPoolNotCached indicates the pool has not been warmed yet
	ErrPoolNotCached RepositoryError = "pool not cached"

	// ErrCardNotFound indicates no cached card carries the code
	ErrCardNotFound RepositoryError = "card not found"
)

// Repository caches the card catalog partitioned into draft pools
type Repository interface {
	// SetCatalog stores the full card list, replacing pool membership
	SetCatalog(ctx context.Context, catalog []*entities.Card) error

	// GetPool returns a cached pool, or ErrPoolNotCached
	GetPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error)

	// GetCard returns a cached card by code, or ErrCardNotFound
	GetCard(ctx context.Context, code string) (*entities.Card, error)
}

// KindOf returns the pool kind a card belongs to
func KindOf(card *entities.Card) entities.PoolKind {
	if card.IsIdentity() {
		return entities.PoolIdentities
	}
	return entities.PoolCards
}
