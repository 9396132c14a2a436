package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

func (h *Handler) handleDraftCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)

	draft, err := h.ServiceProvider.DraftService.CreateDraft(context.Background(), userID)
	if err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"Draft `%s` created! Other players can join with `/draft join code:%s`.",
		draft.ID, draft.ID))
}

func (h *Handler) handleDraftJoin(s *discordgo.Session, i *discordgo.InteractionCreate, code string) {
	userID := interactionUserID(i)

	draft, err := h.ServiceProvider.DraftService.JoinDraft(context.Background(), code, userID)
	if err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"You joined draft `%s`. There are now %d players registered.",
		draft.ID, draft.NumPlayers()))
}

func (h *Handler) handleDraftLeave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)

	if err := h.ServiceProvider.DraftService.LeaveDraft(context.Background(), userID); err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, "You have left the draft.")
}

func (h *Handler) handleDraftCancel(s *discordgo.Session, i *discordgo.InteractionCreate, code string) {
	userID := interactionUserID(i)

	if err := h.ServiceProvider.DraftService.CancelDraft(context.Background(), code, userID); err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("Draft `%s` was cancelled.", code))
}

func (h *Handler) handleDraftStart(s *discordgo.Session, i *discordgo.InteractionCreate, code string) {
	userID := interactionUserID(i)

	// Dealing packs means a catalog fetch on a cold cache, so acknowledge
	// first and deliver the result as a follow-up
	if err := deferEphemeral(s, i); err != nil {
		log.Printf("failed to defer start response: %v", err)
		return
	}

	if err := h.ServiceProvider.DraftService.StartDraft(context.Background(), code, userID); err != nil {
		followUpEphemeral(s, i, userMessage(err))
		return
	}

	followUpEphemeral(s, i, "The draft has begun! Check your DMs for your first pack.")
}

func (h *Handler) handlePick(s *discordgo.Session, i *discordgo.InteractionCreate, code string) {
	userID := interactionUserID(i)

	card, err := h.ServiceProvider.DraftService.SubmitPick(context.Background(), userID, code)
	if err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("You picked %s.", card.Title))
}

func (h *Handler) handlePicks(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)

	if err := h.ServiceProvider.DraftService.ListPicks(context.Background(), userID); err != nil {
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, "Check your DMs for your picks.")
}

func (h *Handler) handleDebug(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)

	path, err := h.ServiceProvider.DraftService.DumpState(context.Background(), userID)
	if err != nil {
		if apperrors.IsPermissionDenied(err) {
			respondEphemeral(s, i, "Only an admin can use this command.")
			return
		}
		respondEphemeral(s, i, userMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("Registry dump written to `%s`.", path))
}

// userMessage maps a service error to what the invoking user should see
func userMessage(err error) string {
	switch apperrors.GetCode(err) {
	case apperrors.CodeAlreadyDrafting:
		return "You are already in a draft. Leave it before creating or joining another."
	case apperrors.CodeAlreadyJoined:
		return "You cannot join the same draft more than once."
	case apperrors.CodeAlreadyStarted:
		return "That draft has already started."
	case apperrors.CodeNotFound:
		return "That draft does not exist."
	case apperrors.CodeNotEnrolled:
		return "You are not enrolled in a draft."
	case apperrors.CodePermissionDenied:
		return "You are not allowed to do that."
	case apperrors.CodeNoOpenPack:
		return "You have no open pack to pick from."
	case apperrors.CodeCardNotInPack:
		return "That card is not in your open pack."
	case apperrors.CodeCatalogUnavailable:
		return "Card data is unavailable right now. Please try again later."
	case apperrors.CodeNotificationFailed:
		return "Could not DM you. Make sure your DMs are open."
	case apperrors.CodeInvalidArgument:
		return err.Error()
	default:
		log.Printf("unexpected error handling command: %v", err)
		return "Something went wrong. Please try again."
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("failed to respond to interaction: %v", err)
	}
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func followUpEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("failed to send follow-up message: %v", err)
	}
}
