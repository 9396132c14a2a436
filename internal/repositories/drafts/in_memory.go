package drafts

import (
	"context"
	"sync"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// inMemoryRepository implements Repository with two owned maps, giving
// O(1) membership tests for both draft ids and participants
type inMemoryRepository struct {
	mu           sync.RWMutex
	drafts       map[string]*entities.Draft
	participants map[string]string // participantID -> draftID
}

// NewInMemoryRepository creates a new in-memory draft registry
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		drafts:       make(map[string]*entities.Draft),
		participants: make(map[string]string),
	}
}

// Create registers a new draft and enrolls its current players
func (r *inMemoryRepository) Create(ctx context.Context, draft *entities.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[draft.ID]; exists {
		return ErrDraftExists
	}

	players := draft.PlayerIDs()
	for _, participantID := range players {
		if _, enrolled := r.participants[participantID]; enrolled {
			return ErrParticipantEnrolled
		}
	}

	r.drafts[draft.ID] = draft
	for _, participantID := range players {
		r.participants[participantID] = draft.ID
	}

	return nil
}

// Get retrieves a draft by id
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.drafts[id]
	if !exists {
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

// GetByParticipant retrieves the draft a participant occupies
func (r *inMemoryRepository) GetByParticipant(ctx context.Context, participantID string) (*entities.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draftID, enrolled := r.participants[participantID]
	if !enrolled {
		return nil, ErrParticipantNotEnrolled
	}

	draft, exists := r.drafts[draftID]
	if !exists {
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

// AddParticipant enrolls a participant into a draft's reverse index
func (r *inMemoryRepository) AddParticipant(ctx context.Context, draftID, participantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[draftID]; !exists {
		return ErrDraftNotFound
	}
	if _, enrolled := r.participants[participantID]; enrolled {
		return ErrParticipantEnrolled
	}

	r.participants[participantID] = draftID
	return nil
}

// RemoveParticipant removes a participant from the reverse index
func (r *inMemoryRepository) RemoveParticipant(ctx context.Context, participantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, enrolled := r.participants[participantID]; !enrolled {
		return ErrParticipantNotEnrolled
	}

	delete(r.participants, participantID)
	return nil
}

// Delete removes a draft and every reverse-index entry pointing at it
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[id]; !exists {
		return ErrDraftNotFound
	}

	delete(r.drafts, id)
	for participantID, draftID := range r.participants {
		if draftID == id {
			delete(r.participants, participantID)
		}
	}

	return nil
}

// ListAll returns every active draft
func (r *inMemoryRepository) ListAll(ctx context.Context) ([]*entities.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.Draft, 0, len(r.drafts))
	for _, draft := range r.drafts {
		all = append(all, draft)
	}

	return all, nil
}
