package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/anrdraft/draft-bot-discord/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "draft",
			Description: "Netrunner draft commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Create a new draft",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "join",
					Description: "Join a draft by code",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Draft code",
							Required:    true,
						},
					},
				},
				{
					Name:        "leave",
					Description: "Leave the draft you are in (before it starts)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "cancel",
					Description: "Cancel your draft (creator only)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Draft code",
							Required:    true,
						},
					},
				},
				{
					Name:        "start",
					Description: "Start your draft (creator only)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Draft code",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "pick",
			Description: "Pick a card from your open pack",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Card code",
					Required:    true,
				},
			},
		},
		{
			Name:        "picks",
			Description: "DM yourself your picks so far",
		},
		{
			Name:        "debug",
			Description: "Dump registry state (operator only)",
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "draft":
		if len(data.Options) == 0 {
			return
		}
		subcommand := data.Options[0]
		switch subcommand.Name {
		case "create":
			h.handleDraftCreate(s, i)
		case "join":
			h.handleDraftJoin(s, i, stringOption(subcommand, "code"))
		case "leave":
			h.handleDraftLeave(s, i)
		case "cancel":
			h.handleDraftCancel(s, i, stringOption(subcommand, "code"))
		case "start":
			h.handleDraftStart(s, i, stringOption(subcommand, "code"))
		}
	case "pick":
		var code string
		for _, opt := range data.Options {
			if opt.Name == "code" {
				code = opt.StringValue()
			}
		}
		h.handlePick(s, i, code)
	case "picks":
		h.handlePicks(s, i)
	case "debug":
		h.handleDebug(s, i)
	}
}

// stringOption pulls a named string option off a subcommand
func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// interactionUserID returns the invoking user's ID for both guild and DM
// interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
