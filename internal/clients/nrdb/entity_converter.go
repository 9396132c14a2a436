package nrdb

import (
	"strings"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
)

// apiCard is the subset of NetrunnerDB card fields the draft needs
type apiCard struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	SideCode    string `json:"side_code"`
	FactionCode string `json:"faction_code"`
	TypeCode    string `json:"type_code"`
	Text        string `json:"text"`
}

func apiCardToCard(card *apiCard, imageURLTemplate string) *entities.Card {
	return &entities.Card{
		Code:     card.Code,
		Title:    card.Title,
		Side:     entities.Side(card.SideCode),
		Faction:  card.FactionCode,
		Type:     card.TypeCode,
		Text:     card.Text,
		ImageURL: strings.ReplaceAll(imageURLTemplate, "{code}", card.Code),
	}
}
