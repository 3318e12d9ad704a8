package driven

import (
	"context"

	"tvstream/internal/m3u"
)

// PlaylistFetcher retrieves and parses a remote M3U playlist. This is
// a driven port implemented by an HTTP adapter; tests substitute mocks.
type PlaylistFetcher interface {
	// Fetch downloads the playlist at url and returns its tracks in
	// file order. Transport errors and non-2xx responses are returned
	// as errors; the caller treats any error as an empty playlist.
	Fetch(ctx context.Context, url string) ([]m3u.Track, error)
}
