package application

import (
	"context"
	"errors"
	"testing"

	"tvstream/internal/stream"
)

func TestStreamService_CreateStream(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns next sequential ID", func(t *testing.T) {
		var saved stream.Stream
		repo := &mockStreamRepository{
			FindAllFunc: func(ctx context.Context) ([]stream.Stream, error) {
				return []stream.Stream{{ID: 3}, {ID: 7}, {ID: 5}}, nil
			},
			SaveFunc: func(ctx context.Context, s stream.Stream) error {
				saved = s
				return nil
			},
		}

		service := NewStreamService(repo)

		created, err := service.CreateStream(ctx, stream.Stream{
			Title:     "Premier League",
			StreamURL: "https://example.com/live.m3u8",
			Category:  "sports",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if created.ID != 8 {
			t.Errorf("expected ID 8, got %d", created.ID)
		}
		if saved.ID != 8 {
			t.Errorf("expected saved ID 8, got %d", saved.ID)
		}
	})

	t.Run("applies defaults for optional fields", func(t *testing.T) {
		repo := &mockStreamRepository{
			FindAllFunc: func(ctx context.Context) ([]stream.Stream, error) {
				return nil, nil
			},
			SaveFunc: func(ctx context.Context, s stream.Stream) error {
				return nil
			},
		}

		service := NewStreamService(repo)

		created, err := service.CreateStream(ctx, stream.Stream{
			Title:     "Premier League",
			StreamURL: "https://example.com/live.m3u8",
			Category:  "sports",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if created.ID != 1 {
			t.Errorf("expected ID 1 for empty store, got %d", created.ID)
		}
		if created.Thumbnail != stream.DefaultThumbnail {
			t.Errorf("expected default thumbnail, got %v", created.Thumbnail)
		}
		if created.Quality != "Auto" {
			t.Errorf("expected quality Auto, got %v", created.Quality)
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		service := NewStreamService(&mockStreamRepository{})

		_, err := service.CreateStream(ctx, stream.Stream{Title: "No URL"})
		if !errors.Is(err, stream.ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	})
}

func TestStreamService_UpdateStream(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		current := stream.Stream{
			ID:        1,
			Title:     "Original",
			StreamURL: "https://example.com/live.m3u8",
			Category:  "sports",
			Quality:   "HD",
		}

		var updated stream.Stream
		repo := &mockStreamRepository{
			FindByIDFunc: func(ctx context.Context, id int) (stream.Stream, error) {
				return current, nil
			},
			UpdateFunc: func(ctx context.Context, s stream.Stream) error {
				updated = s
				return nil
			},
		}

		service := NewStreamService(repo)

		title := "Renamed"
		featured := true
		result, err := service.UpdateStream(ctx, 1, StreamPatch{Title: &title, IsFeatured: &featured})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Title != "Renamed" {
			t.Errorf("expected title Renamed, got %v", result.Title)
		}
		if !result.IsFeatured {
			t.Error("expected isFeatured true")
		}
		if result.Quality != "HD" {
			t.Errorf("expected untouched quality HD, got %v", result.Quality)
		}
		if updated.Title != "Renamed" {
			t.Errorf("expected persisted title Renamed, got %v", updated.Title)
		}
	})

	t.Run("returns error for missing stream", func(t *testing.T) {
		repo := &mockStreamRepository{
			FindByIDFunc: func(ctx context.Context, id int) (stream.Stream, error) {
				return stream.Stream{}, stream.ErrStreamNotFound
			},
		}

		service := NewStreamService(repo)

		_, err := service.UpdateStream(ctx, 42, StreamPatch{})
		if !errors.Is(err, stream.ErrStreamNotFound) {
			t.Errorf("expected ErrStreamNotFound, got %v", err)
		}
	})
}

func TestStreamService_Catalog(t *testing.T) {
	ctx := context.Background()

	repo := &mockStreamRepository{
		FindAllFunc: func(ctx context.Context) ([]stream.Stream, error) {
			return []stream.Stream{
				{ID: 1, Title: "Big Match", StreamURL: "https://example.com/1.m3u8", Category: "sports", IsFeatured: true, Genre: "Football"},
				{ID: 2, Title: "Evening News", StreamURL: "https://example.com/2.m3u8", Category: "news"},
			}, nil
		},
	}

	service := NewStreamService(repo)

	catalog, err := service.Catalog(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("features only flagged streams", func(t *testing.T) {
		if len(catalog.LiveStreams) != 1 {
			t.Fatalf("expected 1 live stream, got %d", len(catalog.LiveStreams))
		}
		if catalog.LiveStreams[0].Title != "Big Match" {
			t.Errorf("expected Big Match, got %v", catalog.LiveStreams[0].Title)
		}
		if catalog.LiveStreams[0].Quality != "Auto" {
			t.Errorf("expected quality fallback Auto, got %v", catalog.LiveStreams[0].Quality)
		}
	})

	t.Run("includes every fixed category bucket", func(t *testing.T) {
		if len(catalog.CategoryData) != len(stream.Catalog) {
			t.Fatalf("expected %d buckets, got %d", len(stream.Catalog), len(catalog.CategoryData))
		}

		sports := catalog.CategoryData["sports"]
		if len(sports.Items) != 1 || sports.Items[0].Title != "Big Match" {
			t.Errorf("expected Big Match in sports bucket, got %v", sports.Items)
		}

		movies := catalog.CategoryData["movies"]
		if movies.Items == nil || len(movies.Items) != 0 {
			t.Errorf("expected empty non-nil movies bucket, got %v", movies.Items)
		}
	})
}
