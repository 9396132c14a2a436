package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/anrdraft/draft-bot-discord/internal/clients/nrdb"
	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// Fetches the live card catalog and reports pool sizes per side, plus how
// many cards each pack would hold for common player counts. Useful for
// checking a cardpool before hosting a draft.
func main() {
	ctx := context.Background()

	baseURL := os.Getenv("NRDB_API_URL")

	client, err := nrdb.New(&nrdb.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: baseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create NetrunnerDB client: %v", err)
	}

	catalog, err := client.ListCards(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch card catalog: %v", err)
	}

	fmt.Printf("Fetched %d cards\n\n", len(catalog))

	pools := make(map[entities.Side]map[entities.PoolKind]int)
	for _, side := range entities.Sides() {
		pools[side] = make(map[entities.PoolKind]int)
	}
	for _, card := range catalog {
		if card.IsIdentity() {
			pools[card.Side][entities.PoolIdentities]++
		} else {
			pools[card.Side][entities.PoolCards]++
		}
	}

	for _, side := range entities.Sides() {
		identities := pools[side][entities.PoolIdentities]
		regulars := pools[side][entities.PoolCards]
		fmt.Printf("%s: %d identities, %d cards\n", side, identities, regulars)

		for players := 2; players <= 8; players++ {
			perRound := regulars / (players * entities.PackRoundsPerSide)
			leftover := regulars % (players * entities.PackRoundsPerSide)
			fmt.Printf("  %d players: %d cards per pack, %d discarded\n",
				players, perRound, leftover)
		}
		fmt.Println()
	}
}
