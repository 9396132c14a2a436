package draft

import (
	"context"
	"log"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

const (
	// identitiesPerPlayer is the size of each identity pack
	identitiesPerPlayer = 5

	// cardsPerPlayerPerSide is each player's share of a side's card pool,
	// split across the three card rounds
	cardsPerPlayerPerSide = 45
)

// allocatePacks builds the full pack sequence for every player from the
// catalog pools: identities then three card rounds for corp, the same for
// runner. Dealing is round-robin over the players in join order from a
// shuffled pool, so the result is uniform regardless of that order. The
// returned packs are square: within a round every player's pack has the
// same size, and leftovers of a pool that does not divide evenly are
// discarded.
func (s *service) allocatePacks(ctx context.Context, players []string) (map[string][]entities.Pack, error) {
	packs := make(map[string][]entities.Pack, len(players))
	for _, participantID := range players {
		packs[participantID] = make([]entities.Pack, 0, entities.PacksPerPlayer)
	}

	for _, side := range entities.Sides() {
		identities, err := s.catalog.CardsForPool(ctx, side, entities.PoolIdentities)
		if err != nil {
			return nil, err
		}
		s.dealIdentityRound(players, packs, identities)

		pool, err := s.catalog.CardsForPool(ctx, side, entities.PoolCards)
		if err != nil {
			return nil, err
		}
		s.dealCardRounds(players, packs, pool)
	}

	return packs, nil
}

// dealIdentityRound deals one pack of identities per player
func (s *service) dealIdentityRound(players []string, packs map[string][]entities.Pack, pool []*entities.Card) {
	n := len(players)
	deck := s.shuffleAndTrim(pool, identitiesPerPlayer*n)

	round := make(map[string]entities.Pack, n)
	for len(deck) >= n {
		for _, participantID := range players {
			round[participantID] = append(round[participantID], deck[0])
			deck = deck[1:]
		}
	}
	if len(deck) > 0 {
		log.Printf("discarding %d leftover identity cards that do not divide across %d players", len(deck), n)
	}

	for _, participantID := range players {
		if len(round[participantID]) > 0 {
			packs[participantID] = append(packs[participantID], round[participantID])
		}
	}
}

// dealCardRounds deals the three card packs per player for one side
func (s *service) dealCardRounds(players []string, packs map[string][]entities.Pack, pool []*entities.Card) {
	n := len(players)
	deck := s.shuffleAndTrim(pool, cardsPerPlayerPerSide*n)

	// Square packs: every pack this side gets exactly target cards, even
	// when the pool does not divide evenly.
	target := len(deck) / (n * entities.PackRoundsPerSide)
	for round := 0; round < entities.PackRoundsPerSide; round++ {
		if target == 0 {
			break
		}
		current := make(map[string]entities.Pack, n)
		for count := 0; count < target && len(deck) >= n; count++ {
			for _, participantID := range players {
				current[participantID] = append(current[participantID], deck[0])
				deck = deck[1:]
			}
		}
		for _, participantID := range players {
			packs[participantID] = append(packs[participantID], current[participantID])
		}
	}

	if len(deck) > 0 {
		log.Printf("discarding %d leftover cards that do not divide across %d players", len(deck), n)
	}
}

// shuffleAndTrim copies the pool, shuffles the copy, and slices it to at
// most limit cards. Dealing sequentially from the shuffled deck draws
// uniformly from the remaining pool at every step.
func (s *service) shuffleAndTrim(pool []*entities.Card, limit int) []*entities.Card {
	deck := make([]*entities.Card, len(pool))
	copy(deck, pool)
	s.shuffler.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	if len(deck) > limit {
		deck = deck[:limit]
	}
	return deck
}
