package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"tvstream/internal/cache"
	"tvstream/internal/category"
	"tvstream/internal/m3u"
)

func storedCategory(t *testing.T, label, key, url string, channels []category.Channel) category.Category {
	t.Helper()

	cat, err := category.New(label, key, url, channels, 0)
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	return cat
}

func manualChannel(t *testing.T, title, url string) category.Channel {
	t.Helper()

	ch, err := category.NewChannel(title, url, "", "", "")
	if err != nil {
		t.Fatalf("failed to create channel: %v", err)
	}

	return ch
}

func TestCategoryService_Aggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges manual channels ahead of remote ones", func(t *testing.T) {
		manual := []category.Channel{manualChannel(t, "House Feed", "https://example.com/house.m3u8")}
		cat := storedCategory(t, "Sports", "sports", "https://example.com/sports.m3u", manual)

		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return cat, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				return []m3u.Track{
					{Title: "Sky Sports", URL: "https://example.com/sky.m3u8", Group: "Sports"},
				}, nil
			},
		}

		service := NewCategoryService(repo, fetcher, cache.New[category.Summary](time.Hour), discardLogger())

		summary, err := service.Aggregate(ctx, "sports")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if summary.Count != 2 {
			t.Fatalf("expected 2 channels, got %d", summary.Count)
		}
		if summary.Channels[0].Title != "House Feed" {
			t.Errorf("expected manual channel first, got %v", summary.Channels[0].Title)
		}
		if summary.Channels[0].ID != "sports-0" {
			t.Errorf("expected ID sports-0, got %v", summary.Channels[0].ID)
		}
		if summary.Channels[1].ID != "sports-1" {
			t.Errorf("expected ID sports-1, got %v", summary.Channels[1].ID)
		}
	})

	t.Run("names untitled remote tracks by position", func(t *testing.T) {
		cat := storedCategory(t, "Sports", "sports", "https://example.com/sports.m3u", nil)

		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return cat, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				// An #EXTINF line without a comma parses to an empty title.
				return []m3u.Track{
					{Title: "", URL: "https://example.com/bare.m3u8"},
					{Title: "Sky Sports", URL: "https://example.com/sky.m3u8"},
				}, nil
			},
		}

		service := NewCategoryService(repo, fetcher, cache.New[category.Summary](time.Hour), discardLogger())

		summary, err := service.Aggregate(ctx, "sports")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if summary.Count != 2 {
			t.Fatalf("expected 2 channels, got %d", summary.Count)
		}
		if summary.Channels[0].Title != "Channel 1" {
			t.Errorf("expected title Channel 1, got %q", summary.Channels[0].Title)
		}
		if summary.Channels[1].Title != "Sky Sports" {
			t.Errorf("expected title Sky Sports, got %q", summary.Channels[1].Title)
		}
	})

	t.Run("degrades to manual channels when fetch fails", func(t *testing.T) {
		manual := []category.Channel{manualChannel(t, "House Feed", "https://example.com/house.m3u8")}
		cat := storedCategory(t, "Sports", "sports", "https://example.com/sports.m3u", manual)

		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return cat, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				return nil, errors.New("upstream down")
			},
		}

		service := NewCategoryService(repo, fetcher, cache.New[category.Summary](time.Hour), discardLogger())

		summary, err := service.Aggregate(ctx, "sports")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if summary.Count != 1 {
			t.Fatalf("expected 1 channel, got %d", summary.Count)
		}
		if summary.Channels[0].Title != "House Feed" {
			t.Errorf("expected manual channel, got %v", summary.Channels[0].Title)
		}
	})

	t.Run("serves cached result without refetching", func(t *testing.T) {
		cat := storedCategory(t, "News", "news", "https://example.com/news.m3u", nil)

		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return cat, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				return []m3u.Track{{Title: "BBC News", URL: "https://example.com/bbc.m3u8"}}, nil
			},
		}

		clock := &fakeClock{current: time.Now()}
		service := NewCategoryService(repo, fetcher, cache.NewWithClock[category.Summary](time.Hour, clock.now), discardLogger())

		if _, err := service.Aggregate(ctx, "news"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := service.Aggregate(ctx, "news"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if fetcher.calls != 1 {
			t.Errorf("expected 1 fetch, got %d", fetcher.calls)
		}

		clock.advance(time.Hour + time.Second)

		if _, err := service.Aggregate(ctx, "news"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if fetcher.calls != 2 {
			t.Errorf("expected refetch after TTL, got %d fetches", fetcher.calls)
		}
	})

	t.Run("falls back to defaults when store is empty", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return category.Category{}, category.ErrCategoryNotFound
			},
			FindAllFunc: func(ctx context.Context) ([]category.Category, error) {
				return nil, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				return []m3u.Track{{Title: "Sky Sports", URL: "https://example.com/sky.m3u8"}}, nil
			},
		}

		service := NewCategoryService(repo, fetcher, cache.New[category.Summary](time.Hour), discardLogger())

		summary, err := service.Aggregate(ctx, "sports")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if summary.Label != "Sports" {
			t.Errorf("expected default Sports label, got %v", summary.Label)
		}
	})

	t.Run("returns not found for unknown key", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindByKeyFunc: func(ctx context.Context, key string) (category.Category, error) {
				return category.Category{}, category.ErrCategoryNotFound
			},
			FindAllFunc: func(ctx context.Context) ([]category.Category, error) {
				return []category.Category{storedCategory(t, "News", "news", "https://example.com/news.m3u", nil)}, nil
			},
		}
		fetcher := &mockPlaylistFetcher{
			FetchFunc: func(ctx context.Context, url string) ([]m3u.Track, error) {
				t.Fatal("fetch should not be called")
				return nil, nil
			},
		}

		service := NewCategoryService(repo, fetcher, cache.New[category.Summary](time.Hour), discardLogger())

		_, err := service.Aggregate(ctx, "bogus")
		if !errors.Is(err, category.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCategoryService_ListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns defaults when store is empty", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindAllFunc: func(ctx context.Context) ([]category.Category, error) {
				return nil, nil
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		categories, err := service.ListCategories(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(categories) == 0 {
			t.Fatal("expected default categories, got none")
		}
	})

	t.Run("returns stored categories when present", func(t *testing.T) {
		stored := storedCategory(t, "Custom", "custom", "https://example.com/custom.m3u", nil)
		repo := &mockCategoryRepository{
			FindAllFunc: func(ctx context.Context) ([]category.Category, error) {
				return []category.Category{stored}, nil
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		categories, err := service.ListCategories(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(categories) != 1 || categories[0].Key() != "custom" {
			t.Errorf("expected stored category, got %v", categories)
		}
	})
}

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and saves payload", func(t *testing.T) {
		var saved category.Category
		repo := &mockCategoryRepository{
			SaveFunc: func(ctx context.Context, cat category.Category) error {
				saved = cat
				return nil
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		payload := category.Payload{Label: "My Sports!", URL: "https://example.com/sports.m3u"}
		cat, err := service.CreateCategory(ctx, payload)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cat.Key() != "my-sports" {
			t.Errorf("expected key my-sports, got %v", cat.Key())
		}
		if saved.Key() != "my-sports" {
			t.Errorf("expected saved key my-sports, got %v", saved.Key())
		}
	})

	t.Run("propagates duplicate error", func(t *testing.T) {
		repo := &mockCategoryRepository{
			SaveFunc: func(ctx context.Context, cat category.Category) error {
				return category.ErrCategoryAlreadyExists
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		payload := category.Payload{Label: "Sports", URL: "https://example.com/sports.m3u"}
		_, err := service.CreateCategory(ctx, payload)
		if !errors.Is(err, category.ErrCategoryAlreadyExists) {
			t.Errorf("expected ErrCategoryAlreadyExists, got %v", err)
		}
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("pins key on update", func(t *testing.T) {
		var updated category.Category
		repo := &mockCategoryRepository{
			UpdateFunc: func(ctx context.Context, cat category.Category) error {
				updated = cat
				return nil
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		payload := category.Payload{Label: "Renamed Label", URL: "https://example.com/sports.m3u"}
		if _, err := service.UpdateCategory(ctx, "sports", payload); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if updated.Key() != "sports" {
			t.Errorf("expected key pinned to sports, got %v", updated.Key())
		}
		if updated.Label() != "Renamed Label" {
			t.Errorf("expected label Renamed Label, got %v", updated.Label())
		}
	})

	t.Run("pins key over conflicting body key", func(t *testing.T) {
		var updated category.Category
		repo := &mockCategoryRepository{
			UpdateFunc: func(ctx context.Context, cat category.Category) error {
				updated = cat
				return nil
			},
		}

		service := NewCategoryService(repo, nil, cache.New[category.Summary](time.Hour), discardLogger())

		payload := category.Payload{
			Label: "Sports",
			Key:   "movies",
			Slug:  "movies",
			URL:   "https://example.com/sports.m3u",
		}
		if _, err := service.UpdateCategory(ctx, "sports", payload); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if updated.Key() != "sports" {
			t.Errorf("expected key pinned to sports, got %v", updated.Key())
		}
	})
}
