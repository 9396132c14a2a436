package draft

import (
	"context"
	"fmt"
	"log"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

// SubmitPick picks a card from the participant's open pack and advances
// the draft. Either the pick fully applies and the draft advances, or the
// call returns an error with no state changed.
func (s *service) SubmitPick(ctx context.Context, participantID, cardCode string) (*entities.Card, error) {
	draft, err := s.repository.GetByParticipant(ctx, participantID)
	if err != nil {
		return nil, apperrors.NotEnrolled("you are not enrolled in a draft")
	}

	draft.Lock()
	defer draft.Unlock()

	// The draft may have been cancelled between the lookup and the lock
	if _, err := s.repository.Get(ctx, draft.ID); err != nil {
		return nil, apperrors.NotEnrolled("you are not enrolled in a draft")
	}

	state := draft.Player(participantID)
	if state == nil {
		return nil, apperrors.NotEnrolled("you are not enrolled in a draft")
	}
	if !state.HasOpenPack || len(state.Inbox) == 0 {
		return nil, apperrors.NoOpenPack("you have no open pack to pick from")
	}

	pack := state.Inbox[0]
	idx := pack.IndexOf(cardCode)
	if idx < 0 {
		return nil, apperrors.CardNotInPackf("card '%s' is not in your open pack", cardCode).
			WithMeta("participant_id", participantID)
	}

	// All validation passed; apply the pick
	card := pack[idx]
	pack = append(pack[:idx], pack[idx+1:]...)
	state.Inbox = state.Inbox[1:]
	state.Picks[card.Side] = append(state.Picks[card.Side], card.Title)
	if card.IsIdentity() {
		state.IdentityPicks[card.Side]++
	}
	state.HasOpenPack = false

	// A depleted pack is not passed; there is no next pick in it
	if len(pack) > 0 {
		s.passPack(draft, participantID, pack)
	}

	s.advanceAfterPick(ctx, draft, participantID, card)

	return card, nil
}

// passPack hands the remainder of a pack to the next seat's inbox. The
// arriving pack is not opened here; opening is advanceAfterPick's call.
func (s *service) passPack(draft *entities.Draft, fromID string, pack entities.Pack) {
	nextSeat := (draft.SeatOf(fromID) + 1) % draft.NumPlayers()
	neighbor := draft.PlayerAtSeat(nextSeat)
	if neighbor == nil {
		// Seats are a bijection onto 0..n-1, so this cannot happen once
		// the draft has started
		log.Printf("draft %s: no player at seat %d", draft.ID, nextSeat)
		return
	}
	neighbor.Inbox = append(neighbor.Inbox, pack)
}

// advanceAfterPick is the single checkpoint run after every successful
// pick: open packs that arrived for waiting players, and when nobody has
// a pack in flight, either open the next round or conclude the draft.
func (s *service) advanceAfterPick(ctx context.Context, draft *entities.Draft, pickerID string, picked *entities.Card) {
	s.notifyText(ctx, pickerID, fmt.Sprintf(
		"%s was picked. A new pack will open once it is passed to you.", picked.Title))

	needNewPack := true
	for _, participantID := range draft.PlayerIDs() {
		state := draft.Player(participantID)
		if len(state.Inbox) == 0 {
			continue
		}
		needNewPack = false
		if !state.HasOpenPack {
			s.openNextPack(ctx, participantID, state)
		}
	}

	if !needNewPack {
		return
	}

	if draft.Finished() {
		s.concludeDraft(ctx, draft)
		return
	}
	s.openNewPack(ctx, draft)
}

// openNewPack starts the next round: every player's next pending pack
// moves to their inbox and is shown to them
func (s *service) openNewPack(ctx context.Context, draft *entities.Draft) {
	for _, participantID := range draft.PlayerIDs() {
		state := draft.Player(participantID)
		if len(state.Packs) == 0 {
			continue
		}

		pack := state.Packs[0]
		state.Packs = state.Packs[1:]
		state.Inbox = append(state.Inbox, pack)

		for _, card := range pack {
			s.notifyCard(ctx, participantID, card)
		}
		state.HasOpenPack = true
	}
}

// openNextPack shows a waiting player the pack at the front of their inbox
func (s *service) openNextPack(ctx context.Context, participantID string, state *entities.PlayerState) {
	s.notifyText(ctx, participantID, "Here is your next pack.")
	for _, card := range state.Inbox[0] {
		s.notifyCard(ctx, participantID, card)
	}
	state.HasOpenPack = true
}

// concludeDraft sends every player their final pick lists and removes the
// draft from the registry
func (s *service) concludeDraft(ctx context.Context, draft *entities.Draft) {
	for _, participantID := range draft.PlayerIDs() {
		state := draft.Player(participantID)
		s.notifyText(ctx, participantID, "The draft is complete! Here are your picks:")
		s.notifyText(ctx, participantID, formatPicks("Corp:", state.Picks[entities.SideCorp], state.IdentityPicks[entities.SideCorp]))
		s.notifyText(ctx, participantID, formatPicks("Runner:", state.Picks[entities.SideRunner], state.IdentityPicks[entities.SideRunner]))
	}

	if err := s.repository.Delete(ctx, draft.ID); err != nil {
		log.Printf("failed to delete finished draft %s: %v", draft.ID, err)
	}
}
