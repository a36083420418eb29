// Package client is a small helper for calling the short-URL endpoint from
// other Go programs, mirroring the behavior of the web client: a bounded
// request timeout and a clear split between transport failures and errors
// reported by the service itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shareup-app/shareup/internal/models"
)

const requestTimeout = 10 * time.Second

var ErrEmptyPublicURL = errors.New("public url is empty")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateShortLink asks the service to shorten publicURL and returns the
// fully-qualified short URL. Transport failures and server-reported errors
// produce distinct messages; neither is retried.
func (c *Client) CreateShortLink(ctx context.Context, publicURL string) (string, error) {
	if publicURL == "" {
		return "", ErrEmptyPublicURL
	}

	body, err := json.Marshal(models.ShortenRequest{PublicURL: publicURL})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/short-url", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("short url request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return "", fmt.Errorf("short url service error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("short url service error (%d)", resp.StatusCode)
	}

	var shortenResp models.ShortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&shortenResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if shortenResp.ShortURL == "" {
		return "", errors.New("no short url returned from server")
	}

	return shortenResp.ShortURL, nil
}
