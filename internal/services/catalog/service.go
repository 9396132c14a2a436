package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=mockcatalog -source=service.go

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/anrdraft/draft-bot-discord/internal/clients/nrdb"
	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/cards"
)

// Service is the card catalog: pool access for pack allocation and card
// lookup by code
type Service interface {
	// CardsForPool returns the full pool for one side and kind
	CardsForPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error)

	// CardByCode returns the card with the given code
	CardByCode(ctx context.Context, code string) (*entities.Card, error)
}

// service implements the Service interface with a cache-aside repository
// in front of the NetrunnerDB client
type service struct {
	client nrdb.Client
	repo   cards.Repository

	mu     sync.Mutex // serializes refreshes
	warmed bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client     nrdb.Client      // Required
	Repository cards.Repository // Optional, will use in-memory if nil
}

// NewService creates a new catalog service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("nrdb client is required")
	}

	repo := cfg.Repository
	if repo == nil {
		repo = cards.NewInMemoryRepository()
	}

	return &service{
		client: cfg.Client,
		repo:   repo,
	}
}

// CardsForPool returns the full pool for one side and kind
func (s *service) CardsForPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error) {
	pool, err := s.repo.GetPool(ctx, side, kind)
	if err == nil {
		return pool, nil
	}
	if !errors.Is(err, cards.ErrPoolNotCached) {
		log.Printf("catalog cache read failed, refreshing: %v", err)
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	pool, err = s.repo.GetPool(ctx, side, kind)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "pool still empty after refresh").
			WithMeta("side", string(side)).
			WithMeta("kind", string(kind))
	}

	return pool, nil
}

// CardByCode returns the card with the given code
func (s *service) CardByCode(ctx context.Context, code string) (*entities.Card, error) {
	card, err := s.repo.GetCard(ctx, code)
	if err == nil {
		return card, nil
	}

	// Only refetch the catalog for a miss before the first warm; after
	// that an unknown code is just an unknown code.
	s.mu.Lock()
	warmed := s.warmed
	s.mu.Unlock()
	if warmed {
		return nil, apperrors.NotFoundf("no card with code '%s'", code)
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	card, err = s.repo.GetCard(ctx, code)
	if err != nil {
		return nil, apperrors.NotFoundf("no card with code '%s'", code)
	}

	return card, nil
}

// refresh fetches the complete card list and replaces the cached pools
func (s *service) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.client.ListCards(ctx)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "failed to fetch card catalog")
	}
	if len(catalog) == 0 {
		return apperrors.CatalogUnavailable("card catalog is empty")
	}

	if err := s.repo.SetCatalog(ctx, catalog); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "failed to cache card catalog")
	}

	s.warmed = true
	return nil
}
