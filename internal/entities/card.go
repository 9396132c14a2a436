package entities

// Side identifies which half of the card pool a card belongs to
type Side string

const (
	SideCorp   Side = "corp"
	SideRunner Side = "runner"
)

// Sides returns both sides in draft order (corp packs are drafted first)
func Sides() []Side {
	return []Side{SideCorp, SideRunner}
}

// PoolKind distinguishes the identity pool from the regular card pool
type PoolKind string

const (
	PoolIdentities PoolKind = "identities"
	PoolCards      PoolKind = "cards"
)

// Card is a single draftable card. Card identity is by Code, which is
// unique across the full catalog.
type Card struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Side     Side   `json:"side"`
	Faction  string `json:"faction"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

// IsIdentity reports whether the card belongs to the identity pool
func (c *Card) IsIdentity() bool {
	return c.Type == "identity"
}

// Pack is an ordered group of cards delivered together; opened, picked
// from, and passed until empty.
type Pack []*Card

// IndexOf returns the position of the card with the given code, or -1
func (p Pack) IndexOf(code string) int {
	for i, card := range p {
		if card.Code == code {
			return i
		}
	}
	return -1
}
