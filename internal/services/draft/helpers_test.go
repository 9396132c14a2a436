package draft

import (
	"context"
	"sync"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

// fakeCatalog serves fixed pools without touching the network
type fakeCatalog struct {
	pools map[entities.Side]map[entities.PoolKind][]*entities.Card
	err   error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pools: map[entities.Side]map[entities.PoolKind][]*entities.Card{
			entities.SideCorp:   {},
			entities.SideRunner: {},
		},
	}
}

func (f *fakeCatalog) setPool(side entities.Side, kind entities.PoolKind, pool []*entities.Card) {
	f.pools[side][kind] = pool
}

func (f *fakeCatalog) CardsForPool(ctx context.Context, side entities.Side, kind entities.PoolKind) ([]*entities.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pools[side][kind], nil
}

func (f *fakeCatalog) CardByCode(ctx context.Context, code string) (*entities.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, kinds := range f.pools {
		for _, pool := range kinds {
			for _, card := range pool {
				if card.Code == code {
					return card, nil
				}
			}
		}
	}
	return nil, apperrors.NotFoundf("no card with code '%s'", code)
}

// scriptedIDGen returns queued codes in order, then falls back to "zzzz"
type scriptedIDGen struct {
	codes []string
}

func (g *scriptedIDGen) New() string {
	if len(g.codes) == 0 {
		return "zzzz"
	}
	code := g.codes[0]
	g.codes = g.codes[1:]
	return code
}

// recordingNotifier captures every delivery per participant
type recordingNotifier struct {
	mu    sync.Mutex
	texts map[string][]string
	cards map[string][]string
	err   error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		texts: make(map[string][]string),
		cards: make(map[string][]string),
	}
}

func (r *recordingNotifier) SendText(ctx context.Context, participantID, content string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts[participantID] = append(r.texts[participantID], content)
	return nil
}

func (r *recordingNotifier) SendCard(ctx context.Context, participantID string, card *entities.Card) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[participantID] = append(r.cards[participantID], card.Code)
	return nil
}

func (r *recordingNotifier) textsFor(participantID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts[participantID]))
	copy(out, r.texts[participantID])
	return out
}

func (r *recordingNotifier) cardsFor(participantID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.cards[participantID]))
	copy(out, r.cards[participantID])
	return out
}
