package nrdb

//go:generate mockgen -destination=mock/mock_client.go -package=mocknrdb -source=interface.go

import (
	"context"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// Client fetches card data from NetrunnerDB
type Client interface {
	// ListCards returns every card in the catalog
	ListCards(ctx context.Context) ([]*entities.Card, error)
}
