package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const webUserAgent = "coopman/1.0"

// ErrPlayerCountUnavailable is returned when Steam has no count for an app.
var ErrPlayerCountUnavailable = errors.New("player count unavailable")

// WebAPI is a thin client for the public Steam web API and CDN.
type WebAPI struct {
	APIBase string
	CDNBase string
	HTTP    *http.Client
}

// NewWebAPI builds a client with the given bases and timeout. Outbound
// requests are traced like the Nexus client's.
func NewWebAPI(apiBase, cdnBase string, timeout time.Duration) *WebAPI {
	return &WebAPI{
		APIBase: apiBase,
		CDNBase: cdnBase,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// PlayerCount returns the current number of in-game players for a Steam app.
func (w *WebAPI) PlayerCount(ctx context.Context, appID int) (int, error) {
	url := fmt.Sprintf("%s/ISteamUserStats/GetNumberOfCurrentPlayers/v1/?appid=%d", w.APIBase, appID)
	body, err := w.get(ctx, url)
	if err != nil {
		return 0, err
	}
	if gjson.GetBytes(body, "response.result").Int() != 1 {
		return 0, ErrPlayerCountUnavailable
	}
	return int(gjson.GetBytes(body, "response.player_count").Int()), nil
}

// CoverArtURL is the 600x900 portrait used for library tiles and shortcut icons.
func (w *WebAPI) CoverArtURL(appID int) string {
	return fmt.Sprintf("%s/%d/library_600x900.jpg", w.CDNBase, appID)
}

// HeaderURL is the wide banner image.
func (w *WebAPI) HeaderURL(appID int) string {
	return fmt.Sprintf("%s/%d/header.jpg", w.CDNBase, appID)
}

// DownloadCoverArt saves the cover art for an app to destPath, creating
// parent directories as needed.
func (w *WebAPI) DownloadCoverArt(ctx context.Context, appID int, destPath string) error {
	body, err := w.get(ctx, w.CoverArtURL(appID))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return errors.Wrap(err, "create icons dir")
	}
	return errors.Wrap(os.WriteFile(destPath, body, 0o644), "write cover art")
}

func (w *WebAPI) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", webUserAgent)

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "steam request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("steam responded %d for %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read steam response")
	}
	return body, nil
}
