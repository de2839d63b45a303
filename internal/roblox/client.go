// Package roblox is a client for the users API username-history endpoint.
package roblox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bharatsindhu/username-history/internal/history"
)

// DefaultBaseURL is the public users API.
const DefaultBaseURL = "https://users.roblox.com"

// Client fetches username history from the users API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// UsernameHistoryURL builds the first-page history URL for id. No query parameters are set,
// so the API applies its default page size and ordering.
func (c *Client) UsernameHistoryURL(id history.UserID) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/v1/users/%s/username-history", strings.TrimSuffix(base, "/"), id)
}

// Fetch issues a single GET and returns the body as text. Non-2xx responses are returned
// like any other body; only transport and read failures are errors.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &history.Error{Kind: history.KindFetch, Op: "new request", Err: err}
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return "", &history.Error{Kind: history.KindFetch, Op: "get", Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &history.Error{Kind: history.KindFetch, Op: "read body", Err: err}
	}

	logger := c.logger()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.Warn("users api returned non-success status", "url", url, "status", res.StatusCode)
	} else {
		logger.Debug("users api responded", "url", url, "status", res.StatusCode, "bytes", len(body))
	}

	return string(body), nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
