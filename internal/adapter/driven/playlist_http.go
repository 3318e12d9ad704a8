package driven

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tvstream/internal/m3u"
)

// HTTPPlaylistFetcher retrieves M3U playlists over HTTP and parses
// them into tracks.
type HTTPPlaylistFetcher struct {
	client *http.Client
}

// NewHTTPPlaylistFetcher creates a playlist fetcher with the given
// request timeout.
func NewHTTPPlaylistFetcher(timeout time.Duration) *HTTPPlaylistFetcher {
	return &HTTPPlaylistFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the playlist at url and returns its parsed tracks.
func (f *HTTPPlaylistFetcher) Fetch(ctx context.Context, url string) ([]m3u.Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating playlist request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching playlist: unexpected status %d", resp.StatusCode)
	}

	return m3u.Parse(resp.Body), nil
}
