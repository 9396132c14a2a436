package nrdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

const defaultBaseURL = "https://netrunnerdb.com/api/2.0/public"

type client struct {
	httpClient *http.Client
	baseURL    string
}

// Config holds configuration for the NetrunnerDB client
type Config struct {
	HttpClient *http.Client
	BaseURL    string // Optional, defaults to the public v2 API
}

// New creates a new NetrunnerDB client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("cfg cannot be nil")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}, nil
}

// cardsResponse is the NetrunnerDB /cards envelope
type cardsResponse struct {
	Data             []*apiCard `json:"data"`
	ImageURLTemplate string     `json:"imageUrlTemplate"`
	Total            int        `json:"total"`
	Success          bool       `json:"success"`
}

func (c *client) ListCards(ctx context.Context) ([]*entities.Card, error) {
	url := c.baseURL + "/cards"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "failed to build card list request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "failed to fetch card list").
			WithMeta("url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.CatalogUnavailable(fmt.Sprintf("card list request returned status %d", resp.StatusCode)).
			WithMeta("url", url)
	}

	var envelope cardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeCatalogUnavailable, "failed to decode card list")
	}

	cards := make([]*entities.Card, 0, len(envelope.Data))
	for _, apiCard := range envelope.Data {
		cards = append(cards, apiCardToCard(apiCard, envelope.ImageURLTemplate))
	}

	return cards, nil
}
