package notify

import (
	"context"
	"fmt"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
	"github.com/bwmarrin/discordgo"
)

// discordNotifier implements Notifier over Discord DMs
type discordNotifier struct {
	session *discordgo.Session
}

// NewDiscordNotifier creates a Notifier that DMs participants
func NewDiscordNotifier(session *discordgo.Session) Notifier {
	return &discordNotifier{
		session: session,
	}
}

// SendText delivers a plain text message to a participant's DM channel
func (n *discordNotifier) SendText(ctx context.Context, participantID, content string) error {
	channel, err := n.session.UserChannelCreate(participantID, discordgo.WithContext(ctx))
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeNotificationFailed,
			fmt.Sprintf("failed to open DM channel for %s", participantID)).
			WithMeta("participant_id", participantID)
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeNotificationFailed,
			fmt.Sprintf("failed to DM %s", participantID)).
			WithMeta("participant_id", participantID)
	}

	return nil
}

// SendCard delivers a card as an embed with the pick command and image
func (n *discordNotifier) SendCard(ctx context.Context, participantID string, card *entities.Card) error {
	channel, err := n.session.UserChannelCreate(participantID, discordgo.WithContext(ctx))
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeNotificationFailed,
			fmt.Sprintf("failed to open DM channel for %s", participantID)).
			WithMeta("participant_id", participantID)
	}

	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: cardBody(card),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "To pick this card:",
				Value: fmt.Sprintf("```/pick %s```", card.Code),
			},
		},
		Image: &discordgo.MessageEmbedImage{
			URL: card.ImageURL,
		},
	}

	_, err = n.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: "Card",
		Embed:   embed,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeNotificationFailed,
			fmt.Sprintf("failed to DM card to %s", participantID)).
			WithMeta("participant_id", participantID).
			WithMeta("card_code", card.Code)
	}

	return nil
}

func cardBody(card *entities.Card) string {
	return fmt.Sprintf("%s / %s\n\n%s", card.Faction, card.Type, card.Text)
}
