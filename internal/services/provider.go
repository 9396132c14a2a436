package services

import (
	"github.com/anrdraft/draft-bot-discord/internal/clients/nrdb"
	"github.com/anrdraft/draft-bot-discord/internal/notify"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/cards"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/drafts"
	catalogService "github.com/anrdraft/draft-bot-discord/internal/services/catalog"
	draftService "github.com/anrdraft/draft-bot-discord/internal/services/draft"
)

// Provider holds all service instances
type Provider struct {
	DraftService   draftService.Service
	CatalogService catalogService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	NRDBClient      nrdb.Client
	CardRepository  cards.Repository
	DraftRepository drafts.Repository
	Notifier        notify.Notifier
	OwnerID         string
	DumpDir         string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	cardRepo := cfg.CardRepository
	if cardRepo == nil {
		cardRepo = cards.NewInMemoryRepository()
	}

	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = drafts.NewInMemoryRepository()
	}

	// Create catalog service
	catService := catalogService.NewService(&catalogService.ServiceConfig{
		Client:     cfg.NRDBClient,
		Repository: cardRepo,
	})

	// Create draft service
	drftService := draftService.NewService(&draftService.ServiceConfig{
		Repository: draftRepo,
		Catalog:    catService,
		Notifier:   cfg.Notifier,
		OwnerID:    cfg.OwnerID,
		DumpDir:    cfg.DumpDir,
	})

	return &Provider{
		DraftService:   drftService,
		CatalogService: catService,
	}
}
