package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

// registryDump is the artifact written by DumpState
type registryDump struct {
	DumpedAt time.Time    `json:"dumped_at"`
	Drafts   []*draftDump `json:"drafts"`
}

type draftDump struct {
	ID        string         `json:"id"`
	CreatorID string         `json:"creator_id"`
	Started   bool           `json:"started"`
	CreatedAt time.Time      `json:"created_at"`
	Players   []*playerDump  `json:"players"`
	Seats     map[string]int `json:"seats"`
}

type playerDump struct {
	ParticipantID string              `json:"participant_id"`
	Packs         [][]string          `json:"packs"`
	Inbox         [][]string          `json:"inbox"`
	Picks         map[string][]string `json:"picks"`
	HasOpenPack   bool                `json:"has_open_pack"`
}

// DumpState writes a JSON snapshot of every active draft to the dump
// directory and returns the artifact's path. Restricted to the configured
// operator; disabled entirely when no operator is configured.
func (s *service) DumpState(ctx context.Context, requesterID string) (string, error) {
	if s.ownerID == "" || requesterID != s.ownerID {
		log.Printf("denied registry dump request from %s", requesterID)
		return "", apperrors.PermissionDenied("you are not allowed to dump registry state")
	}

	all, err := s.repository.ListAll(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to list drafts")
	}

	dump := &registryDump{
		DumpedAt: time.Now().UTC(),
		Drafts:   make([]*draftDump, 0, len(all)),
	}
	for _, d := range all {
		dump.Drafts = append(dump.Drafts, snapshotDraft(d))
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode registry dump")
	}

	name := fmt.Sprintf("registry-dump-%s-%s.json",
		dump.DumpedAt.Format("20060102-1504"), uuid.New().String()[:8])
	path := filepath.Join(s.dumpDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", apperrors.Wrapf(err, "failed to write registry dump to %s", path)
	}

	log.Printf("wrote registry dump of %d drafts to %s", len(dump.Drafts), path)
	return path, nil
}

// snapshotDraft serializes one draft under its own lock so an in-flight
// pick cannot tear the snapshot
func snapshotDraft(d *entities.Draft) *draftDump {
	d.Lock()
	defer d.Unlock()

	out := &draftDump{
		ID:        d.ID,
		CreatorID: d.CreatorID,
		Started:   d.Started,
		CreatedAt: d.CreatedAt,
		Players:   make([]*playerDump, 0, d.NumPlayers()),
		Seats:     make(map[string]int, len(d.Seats)),
	}
	for id, seat := range d.Seats {
		out.Seats[id] = seat
	}

	for _, participantID := range d.PlayerIDs() {
		state := d.Player(participantID)
		picks := make(map[string][]string, len(state.Picks))
		for side, titles := range state.Picks {
			picks[string(side)] = append([]string{}, titles...)
		}
		out.Players = append(out.Players, &playerDump{
			ParticipantID: participantID,
			Packs:         packCodes(state.Packs),
			Inbox:         packCodes(state.Inbox),
			Picks:         picks,
			HasOpenPack:   state.HasOpenPack,
		})
	}

	return out
}

func packCodes(packs []entities.Pack) [][]string {
	out := make([][]string, len(packs))
	for i, pack := range packs {
		codes := make([]string, len(pack))
		for j, card := range pack {
			codes[j] = card.Code
		}
		out[i] = codes
	}
	return out
}
