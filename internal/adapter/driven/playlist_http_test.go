package driven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPPlaylistFetcher_Fetch(t *testing.T) {
	t.Run("parses playlist response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("#EXTM3U\n#EXTINF:-1 tvg-logo=\"https://example.com/bbc.png\" group-title=\"News\",BBC News\nhttps://example.com/bbc.m3u8\n"))
		}))
		defer server.Close()

		fetcher := NewHTTPPlaylistFetcher(5 * time.Second)

		tracks, err := fetcher.Fetch(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 1 {
			t.Fatalf("expected 1 track, got %d", len(tracks))
		}
		if tracks[0].Title != "BBC News" {
			t.Errorf("expected title BBC News, got %v", tracks[0].Title)
		}
		if tracks[0].Group != "News" {
			t.Errorf("expected group News, got %v", tracks[0].Group)
		}
	})

	t.Run("returns error on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		fetcher := NewHTTPPlaylistFetcher(5 * time.Second)

		if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		fetcher := NewHTTPPlaylistFetcher(5 * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if _, err := fetcher.Fetch(ctx, server.URL); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
