package entities

import (
	"sync"
	"time"
)

// PackRoundsPerSide is the number of non-identity pack rounds dealt per side
const PackRoundsPerSide = 3

// PacksPerPlayer is the number of pack slots each player is dealt: one
// identity pack plus three card packs for each of the two sides
const PacksPerPlayer = 2 * (1 + PackRoundsPerSide)

// Draft is one run of the pack-passing process among a fixed set of
// players. All mutation of a draft after creation must happen with the
// draft's lock held; the registry repository only hands out live pointers.
type Draft struct {
	mu sync.Mutex

	ID        string
	CreatorID string
	Started   bool
	CreatedAt time.Time

	// joinOrder keeps player iteration stable. Dealing and the engine's
	// fan-out scans walk players in join order; pass topology uses Seats.
	joinOrder []string
	Players   map[string]*PlayerState
	Seats     map[string]int
}

// PlayerState tracks one participant's packs and picks within a draft.
// The invariant for the open pack: if HasOpenPack is true, the open pack
// is Inbox[0].
type PlayerState struct {
	ParticipantID string
	Packs         []Pack // dealt but not yet opened, in delivery order
	Inbox         []Pack // arrived and awaiting opening
	Picks         map[Side][]string
	IdentityPicks map[Side]int // identities among Picks, always the leading entries
	HasOpenPack   bool
	JoinedAt      time.Time
}

// NewDraft creates an empty draft with the creator as its sole player
func NewDraft(id, creatorID string) *Draft {
	d := &Draft{
		ID:        id,
		CreatorID: creatorID,
		CreatedAt: time.Now(),
		Players:   make(map[string]*PlayerState),
		Seats:     make(map[string]int),
	}
	d.AddPlayer(creatorID)
	return d
}

// Lock serializes mutations of this draft's state
func (d *Draft) Lock() {
	d.mu.Lock()
}

// Unlock releases the draft's lock
func (d *Draft) Unlock() {
	d.mu.Unlock()
}

// AddPlayer registers a new player state. The caller is responsible for
// the not-started and not-already-joined checks.
func (d *Draft) AddPlayer(participantID string) *PlayerState {
	state := &PlayerState{
		ParticipantID: participantID,
		Packs:         make([]Pack, 0, PacksPerPlayer),
		Inbox:         []Pack{},
		Picks: map[Side][]string{
			SideCorp:   {},
			SideRunner: {},
		},
		IdentityPicks: map[Side]int{
			SideCorp:   0,
			SideRunner: 0,
		},
		JoinedAt: time.Now(),
	}
	d.Players[participantID] = state
	d.joinOrder = append(d.joinOrder, participantID)
	return state
}

// RemovePlayer drops a player from the draft. Only valid before start.
func (d *Draft) RemovePlayer(participantID string) {
	delete(d.Players, participantID)
	delete(d.Seats, participantID)
	for i, id := range d.joinOrder {
		if id == participantID {
			d.joinOrder = append(d.joinOrder[:i], d.joinOrder[i+1:]...)
			break
		}
	}
}

// HasPlayer reports whether the participant is in this draft
func (d *Draft) HasPlayer(participantID string) bool {
	_, ok := d.Players[participantID]
	return ok
}

// Player returns the participant's state, or nil
func (d *Draft) Player(participantID string) *PlayerState {
	return d.Players[participantID]
}

// PlayerIDs returns the participants in join order
func (d *Draft) PlayerIDs() []string {
	ids := make([]string, len(d.joinOrder))
	copy(ids, d.joinOrder)
	return ids
}

// NumPlayers returns the number of players in the draft
func (d *Draft) NumPlayers() int {
	return len(d.joinOrder)
}

// AssignSeats maps the given permutation of 0..n-1 onto the players in
// join order, one value per player.
func (d *Draft) AssignSeats(perm []int) {
	for i, id := range d.joinOrder {
		d.Seats[id] = perm[i]
	}
}

// SeatOf returns the participant's seat number
func (d *Draft) SeatOf(participantID string) int {
	return d.Seats[participantID]
}

// PlayerAtSeat returns the player occupying the given seat, or nil
func (d *Draft) PlayerAtSeat(seat int) *PlayerState {
	for id, s := range d.Seats {
		if s == seat {
			return d.Players[id]
		}
	}
	return nil
}

// Finished reports draft completion: every player's pending packs and
// inbox are simultaneously empty.
func (d *Draft) Finished() bool {
	for _, state := range d.Players {
		if len(state.Packs) > 0 || len(state.Inbox) > 0 {
			return false
		}
	}
	return true
}
