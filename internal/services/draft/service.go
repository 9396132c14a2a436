package draft

//go:generate mockgen -destination=mock/mock_service.go -package=mockdraft -source=service.go

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/anrdraft/draft-bot-discord/internal/draftid"
	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
	"github.com/anrdraft/draft-bot-discord/internal/notify"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/drafts"
	"github.com/anrdraft/draft-bot-discord/internal/services/catalog"
	"github.com/anrdraft/draft-bot-discord/internal/shuffle"
)

// Repository is an alias for the draft registry interface
type Repository = drafts.Repository

// Service defines the draft service interface
type Service interface {
	// CreateDraft creates a new draft with the creator as sole player
	CreateDraft(ctx context.Context, creatorID string) (*entities.Draft, error)

	// JoinDraft adds a participant to a pending draft
	JoinDraft(ctx context.Context, draftID, participantID string) (*entities.Draft, error)

	// LeaveDraft withdraws a participant from their pending draft; a
	// leaving creator cancels the whole draft
	LeaveDraft(ctx context.Context, participantID string) error

	// CancelDraft tears down a draft, started or not (creator only)
	CancelDraft(ctx context.Context, draftID, requesterID string) error

	// StartDraft seats the players, deals the packs, and opens round one
	StartDraft(ctx context.Context, draftID, requesterID string) error

	// SubmitPick picks a card from the participant's open pack and
	// advances the draft
	SubmitPick(ctx context.Context, participantID, cardCode string) (*entities.Card, error)

	// ListPicks DMs the participant their picks so far, split by side
	ListPicks(ctx context.Context, participantID string) error

	// DumpState writes the full registry to a JSON artifact (operator only)
	DumpState(ctx context.Context, requesterID string) (string, error)
}

// service implements the Service interface
type service struct {
	repository Repository
	catalog    catalog.Service
	notifier   notify.Notifier
	idGen      draftid.Generator
	shuffler   shuffle.Shuffler
	ownerID    string
	dumpDir    string

	// mu serializes registry-shape mutations (create/join/leave/cancel/
	// start). The pick path only takes the per-draft lock; lock order is
	// always service, then draft, then repository.
	mu sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  Repository        // Required
	Catalog     catalog.Service   // Required
	Notifier    notify.Notifier   // Required
	IDGenerator draftid.Generator // Optional, will use default if nil
	Shuffler    shuffle.Shuffler  // Optional, will use default if nil
	OwnerID     string            // Optional; DumpState is disabled when empty
	DumpDir     string            // Optional, defaults to the working directory
}

// NewService creates a new draft service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog service is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	svc := &service{
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
		notifier:   cfg.Notifier,
		idGen:      cfg.IDGenerator,
		shuffler:   cfg.Shuffler,
		ownerID:    cfg.OwnerID,
		dumpDir:    cfg.DumpDir,
	}

	if svc.idGen == nil {
		svc.idGen = draftid.NewRandomGenerator()
	}
	if svc.shuffler == nil {
		svc.shuffler = shuffle.NewRandomShuffler()
	}
	if svc.dumpDir == "" {
		svc.dumpDir = "."
	}

	return svc
}

// CreateDraft creates a new draft with the creator as sole player
func (s *service) CreateDraft(ctx context.Context, creatorID string) (*entities.Draft, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, apperrors.InvalidArgument("creator ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		draft := entities.NewDraft(s.idGen.New(), creatorID)

		err := s.repository.Create(ctx, draft)
		if err == nil {
			return draft, nil
		}
		if errors.Is(err, drafts.ErrDraftExists) {
			// Code collision, roll a fresh one
			continue
		}
		if errors.Is(err, drafts.ErrParticipantEnrolled) {
			return nil, apperrors.AlreadyDrafting("you already occupy an active draft").
				WithMeta("participant_id", creatorID)
		}
		return nil, apperrors.Wrap(err, "failed to register draft")
	}
}

// JoinDraft adds a participant to a pending draft
func (s *service) JoinDraft(ctx context.Context, draftID, participantID string) (*entities.Draft, error) {
	if strings.TrimSpace(draftID) == "" {
		return nil, apperrors.InvalidArgument("draft ID is required")
	}
	if strings.TrimSpace(participantID) == "" {
		return nil, apperrors.InvalidArgument("participant ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.repository.Get(ctx, draftID)
	if err != nil {
		return nil, apperrors.NotFoundf("draft '%s' does not exist", draftID)
	}

	draft.Lock()
	defer draft.Unlock()

	if draft.Started {
		return nil, apperrors.AlreadyStartedf("draft '%s' has already started", draftID)
	}
	if draft.HasPlayer(participantID) {
		return nil, apperrors.AlreadyJoined("you cannot join the same draft more than once")
	}

	if err := s.repository.AddParticipant(ctx, draftID, participantID); err != nil {
		if errors.Is(err, drafts.ErrParticipantEnrolled) {
			return nil, apperrors.AlreadyDrafting("you already occupy an active draft").
				WithMeta("participant_id", participantID)
		}
		return nil, apperrors.Wrap(err, "failed to enroll participant")
	}
	draft.AddPlayer(participantID)

	s.notifyText(ctx, draft.CreatorID, fmt.Sprintf(
		"<@%s> has joined your draft (`%s`). There are now %d players registered.",
		participantID, draft.ID, draft.NumPlayers()))

	return draft, nil
}

// LeaveDraft withdraws a participant from their pending draft
func (s *service) LeaveDraft(ctx context.Context, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.repository.GetByParticipant(ctx, participantID)
	if err != nil {
		return apperrors.NotEnrolled("you are not enrolled in a draft")
	}

	draft.Lock()
	defer draft.Unlock()

	if draft.Started {
		return apperrors.AlreadyStartedf("draft '%s' has already started", draft.ID)
	}

	if participantID == draft.CreatorID {
		// The creator leaving cancels the whole draft
		draft.RemovePlayer(participantID)
		if err := s.repository.RemoveParticipant(ctx, participantID); err != nil {
			return apperrors.Wrap(err, "failed to remove participant")
		}
		s.teardownLocked(ctx, draft, fmt.Sprintf(
			"Draft `%s` was cancelled by <@%s>.", draft.ID, draft.CreatorID))
		return nil
	}

	draft.RemovePlayer(participantID)
	if err := s.repository.RemoveParticipant(ctx, participantID); err != nil {
		return apperrors.Wrap(err, "failed to remove participant")
	}

	s.notifyText(ctx, draft.CreatorID, fmt.Sprintf(
		"<@%s> has left your draft (`%s`). There are now %d players registered.",
		participantID, draft.ID, draft.NumPlayers()))

	return nil
}

// CancelDraft tears down a draft, started or not. Only the creator may
// cancel; cancellation is immediate and unconditional once authorized.
func (s *service) CancelDraft(ctx context.Context, draftID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.repository.Get(ctx, draftID)
	if err != nil {
		return apperrors.NotFoundf("draft '%s' does not exist", draftID)
	}

	draft.Lock()
	defer draft.Unlock()

	if requesterID != draft.CreatorID {
		return apperrors.PermissionDenied("only the draft creator can cancel it")
	}

	s.teardownLocked(ctx, draft, fmt.Sprintf(
		"Draft `%s` was cancelled by <@%s>.", draft.ID, draft.CreatorID))

	return nil
}

// StartDraft seats the players, deals the packs, and opens round one
func (s *service) StartDraft(ctx context.Context, draftID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.repository.Get(ctx, draftID)
	if err != nil {
		return apperrors.NotFoundf("draft '%s' does not exist", draftID)
	}

	draft.Lock()
	defer draft.Unlock()

	if requesterID != draft.CreatorID {
		return apperrors.PermissionDenied("only the draft creator can start the draft")
	}
	if draft.Started {
		return apperrors.AlreadyStartedf("draft '%s' has already started", draftID)
	}

	players := draft.PlayerIDs()

	// Allocate into a staging map first so a catalog failure leaves the
	// draft untouched.
	allocated, err := s.allocatePacks(ctx, players)
	if err != nil {
		return err
	}

	for _, participantID := range players {
		draft.Player(participantID).Packs = allocated[participantID]
	}
	draft.AssignSeats(s.shuffler.Perm(len(players)))
	draft.Started = true

	for _, participantID := range players {
		s.notifyText(ctx, participantID, "Welcome to the draft! Here is your first pack. Good luck!")
	}
	s.openNewPack(ctx, draft)

	return nil
}

// ListPicks DMs the participant their picks so far, split by side
func (s *service) ListPicks(ctx context.Context, participantID string) error {
	draft, err := s.repository.GetByParticipant(ctx, participantID)
	if err != nil {
		return apperrors.NotEnrolled("you are not enrolled in a draft")
	}

	draft.Lock()
	defer draft.Unlock()

	state := draft.Player(participantID)
	if state == nil {
		return apperrors.NotEnrolled("you are not enrolled in a draft")
	}

	if err := s.notifier.SendText(ctx, participantID, "Here are your picks so far:"); err != nil {
		return apperrors.Wrap(err, "failed to deliver picks")
	}
	if err := s.notifier.SendText(ctx, participantID, formatPicks("Corp:", state.Picks[entities.SideCorp], state.IdentityPicks[entities.SideCorp])); err != nil {
		return apperrors.Wrap(err, "failed to deliver picks")
	}
	if err := s.notifier.SendText(ctx, participantID, formatPicks("Runner:", state.Picks[entities.SideRunner], state.IdentityPicks[entities.SideRunner])); err != nil {
		return apperrors.Wrap(err, "failed to deliver picks")
	}

	return nil
}

// teardownLocked broadcasts the cancellation notice and removes the draft
// from the registry. Caller holds both the service and the draft lock.
func (s *service) teardownLocked(ctx context.Context, draft *entities.Draft, notice string) {
	for _, participantID := range draft.PlayerIDs() {
		s.notifyText(ctx, participantID, notice)
	}
	if err := s.repository.Delete(ctx, draft.ID); err != nil {
		log.Printf("failed to delete draft %s from registry: %v", draft.ID, err)
	}
}

// notifyText sends best-effort: a failed delivery is logged and never
// interrupts the operation that triggered it
func (s *service) notifyText(ctx context.Context, participantID, content string) {
	if err := s.notifier.SendText(ctx, participantID, content); err != nil {
		log.Printf("failed to notify %s: %v", participantID, err)
	}
}

// notifyCard sends best-effort, like notifyText
func (s *service) notifyCard(ctx context.Context, participantID string, card *entities.Card) {
	if err := s.notifier.SendCard(ctx, participantID, card); err != nil {
		log.Printf("failed to send card %s to %s: %v", card.Code, participantID, err)
	}
}

// formatPicks renders one side's pick list as a code block. A side's
// identity pack is always opened before its card packs, so the first
// identityCount entries are identities, drafted as singles; every later
// pick represents a playset of three.
func formatPicks(heading string, picks []string, identityCount int) string {
	lines := make([]string, len(picks))
	for i, title := range picks {
		prefix := "3 "
		if i < identityCount {
			prefix = "1 "
		}
		lines[i] = prefix + title
	}
	return "```" + heading + "\n\n" + strings.Join(lines, "\n") + "```"
}
