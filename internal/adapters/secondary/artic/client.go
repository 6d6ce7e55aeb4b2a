package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"artwork-gallery/internal/config"
	"artwork-gallery/internal/core/domain"
	ports "artwork-gallery/internal/core/ports/output"
)

type articClient struct {
	baseURL string
	client  *http.Client
}

// NewArtworkClient creates a new Art Institute of Chicago API client adapter
func NewArtworkClient(cfg *config.ArticConfig) ports.ArtworkClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &articClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// artworks API response structure; only "data" is read
type artworksResponse struct {
	Data []domain.Artwork `json:"data"`
}

func (c *articClient) ListArtworks(ctx context.Context, limit int) ([]domain.Artwork, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s/api/v1/artworks?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"method": http.MethodGet,
		"url":    reqURL,
	}).Debug("requesting artworks")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode)
	}

	var body artworksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamDecode, err)
	}

	return body.Data, nil
}
