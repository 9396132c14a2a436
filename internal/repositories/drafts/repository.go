package drafts

import (
	"context"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// RepositoryError is a sentinel error returned by registry operations
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	// ErrDraftNotFound indicates the draft id is not registered
	ErrDraftNotFound RepositoryError = "draft not found"

	// ErrDraftExists indicates the draft id is already in use
	ErrDraftExists RepositoryError = "draft id already in use"

	// ErrParticipantEnrolled indicates the participant already occupies a draft
	ErrParticipantEnrolled RepositoryError = "participant already enrolled in a draft"

	// ErrParticipantNotEnrolled indicates the participant occupies no draft
	ErrParticipantNotEnrolled RepositoryError = "participant not enrolled in any draft"
)

// Repository is the process-wide draft registry: the table of active
// drafts plus the reverse index from participant to the single draft they
// occupy. Unlike the card catalog repositories it hands out live draft
// pointers; mutation of a returned draft is serialized by the draft's own
// lock, while the registry's two maps are serialized here.
type Repository interface {
	// Create registers a new draft and enrolls its current players
	Create(ctx context.Context, draft *entities.Draft) error

	// Get retrieves a draft by id
	Get(ctx context.Context, id string) (*entities.Draft, error)

	// GetByParticipant retrieves the draft a participant occupies
	GetByParticipant(ctx context.Context, participantID string) (*entities.Draft, error)

	// AddParticipant enrolls a participant into a draft's reverse index
	AddParticipant(ctx context.Context, draftID, participantID string) error

	// RemoveParticipant removes a participant from the reverse index
	RemoveParticipant(ctx context.Context, participantID string) error

	// Delete removes a draft and every reverse-index entry pointing at it
	Delete(ctx context.Context, id string) error

	// ListAll returns every active draft
	ListAll(ctx context.Context) ([]*entities.Draft, error)
}
