// Package nexus talks to the Nexus Mods API and figures out which mod
// version is installed locally.
package nexus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const userAgent = "coopman/1.0"

var (
	ErrNoAPIKey     = errors.New("nexus api key not configured")
	ErrUnauthorized = errors.New("nexus api key rejected")
	ErrRateLimited  = errors.New("nexus api rate limit reached")
	ErrModNotFound  = errors.New("mod not found on nexus")
)

// ModInfo is the latest published state of a mod on Nexus Mods.
type ModInfo struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Author      string  `json:"author"`
	Summary     string  `json:"summary"`
	UpdatedTime string  `json:"updated_time"`
	FileName    string  `json:"file_name"`
	SizeMB      float64 `json:"size_mb"`
}

// Client queries the Nexus Mods v1 API. All requests carry the user's
// personal API key in the apikey header.
type Client struct {
	APIBase string
	APIKey  string
	HTTP    *http.Client
}

// NewClient builds a client for the given API base and key. Outbound
// requests are traced so update checks show up in request traces.
func NewClient(apiBase, apiKey string, timeout time.Duration) *Client {
	return &Client{
		APIBase: apiBase,
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// LatestMod fetches the current mod metadata for one game's Seamless Co-op
// mod, identified by its Nexus domain and numeric mod ID.
func (c *Client) LatestMod(ctx context.Context, domain string, modID int) (*ModInfo, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	url := fmt.Sprintf("%s/games/%s/mods/%d.json", c.APIBase, domain, modID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build nexus request")
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nexus request")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrModNotFound
	default:
		return nil, errors.Errorf("nexus responded %d for %s/%d", resp.StatusCode, domain, modID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read nexus response")
	}
	return parseModInfo(body), nil
}

func parseModInfo(body []byte) *ModInfo {
	info := &ModInfo{
		Name:        gjson.GetBytes(body, "name").String(),
		Version:     gjson.GetBytes(body, "version").String(),
		Author:      gjson.GetBytes(body, "author").String(),
		Summary:     gjson.GetBytes(body, "summary").String(),
		UpdatedTime: gjson.GetBytes(body, "updated_time").String(),
	}
	// The main archive, when the endpoint includes uploaded files.
	if f := gjson.GetBytes(body, "uploaded_files.0"); f.Exists() {
		info.FileName = f.Get("file_name").String()
		if kb := f.Get("size_kb").Float(); kb > 0 {
			info.SizeMB = kb / 1024
		}
	}
	return info
}
