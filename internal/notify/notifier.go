package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocknotify -source=notifier.go

import (
	"context"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// Notifier delivers player-visible messages over the chat transport. The
// draft engine treats delivery as best-effort: a send error is reported to
// the caller, which logs and continues rather than unwinding draft state.
type Notifier interface {
	// SendText delivers a plain text message to a participant
	SendText(ctx context.Context, participantID, content string) error

	// SendCard delivers a structured card presentation to a participant
	SendCard(ctx context.Context, participantID string, card *entities.Card) error
}
