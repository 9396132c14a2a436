package testutils

import (
	"fmt"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// CreateTestCard creates a card entity for tests
func CreateTestCard(code, title string, side entities.Side, cardType string) *entities.Card {
	return &entities.Card{
		Code:     code,
		Title:    title,
		Side:     side,
		Faction:  "neutral",
		Type:     cardType,
		Text:     "Test card text.",
		ImageURL: fmt.Sprintf("https://example.test/%s.jpg", code),
	}
}

// CreateTestPool creates count cards of one side and pool kind, with codes
// prefixed so they stay unique across pools
func CreateTestPool(side entities.Side, kind entities.PoolKind, count int) []*entities.Card {
	cardType := "identity"
	if kind == entities.PoolCards {
		cardType = "program"
		if side == entities.SideCorp {
			cardType = "asset"
		}
	}

	pool := make([]*entities.Card, 0, count)
	for i := 0; i < count; i++ {
		code := fmt.Sprintf("%s-%s-%03d", side, kind, i)
		title := fmt.Sprintf("%s %s %d", side, cardType, i)
		pool = append(pool, CreateTestCard(code, title, side, cardType))
	}
	return pool
}

// CreateTestCatalog creates a full catalog with the given pool sizes per
// side: identities identity cards and cards regular cards for each side
func CreateTestCatalog(identities, cards int) []*entities.Card {
	catalog := make([]*entities.Card, 0, 2*(identities+cards))
	for _, side := range entities.Sides() {
		catalog = append(catalog, CreateTestPool(side, entities.PoolIdentities, identities)...)
		catalog = append(catalog, CreateTestPool(side, entities.PoolCards, cards)...)
	}
	return catalog
}
