package application

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"tvstream/internal/cache"
	"tvstream/internal/category"
	"tvstream/internal/m3u"
	"tvstream/internal/metrics"
	"tvstream/internal/port/driven"
)

// CategoryService provides use cases for IPTV category management and
// aggregation. It depends only on domain packages and port interfaces.
type CategoryService struct {
	repo    driven.CategoryRepository
	fetcher driven.PlaylistFetcher
	cache   *cache.Cache[category.Summary]
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCategoryService creates a new CategoryService. The cache holds
// aggregated channel lists per category key.
func NewCategoryService(repo driven.CategoryRepository, fetcher driven.PlaylistFetcher, c *cache.Cache[category.Summary], logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:    repo,
		fetcher: fetcher,
		cache:   c,
		logger:  logger,
	}
}

// CreateCategory normalizes an admin payload into a category and
// persists it.
// Returns category.ErrCategoryAlreadyExists if the key is taken.
func (s *CategoryService) CreateCategory(ctx context.Context, payload category.Payload) (category.Category, error) {
	cat, err := payload.Normalize("")
	if err != nil {
		return category.Category{}, err
	}

	if err := s.repo.Save(ctx, cat); err != nil {
		return category.Category{}, err
	}

	return cat, nil
}

// UpdateCategory replaces the category stored under key with the
// normalized payload. The key is pinned so a changed label cannot
// move the category.
// Returns category.ErrCategoryNotFound if the category does not exist.
func (s *CategoryService) UpdateCategory(ctx context.Context, key string, payload category.Payload) (category.Category, error) {
	// The request path owns the key; body aliases must not retarget
	// another category.
	payload.Key = key
	payload.Slug = ""

	cat, err := payload.Normalize(key)
	if err != nil {
		return category.Category{}, err
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return category.Category{}, err
	}

	return cat, nil
}

// GetCategory retrieves a stored category by key.
func (s *CategoryService) GetCategory(ctx context.Context, key string) (category.Category, error) {
	return s.repo.FindByKey(ctx, key)
}

// DeleteCategory removes a category by key and returns the removed
// value.
func (s *CategoryService) DeleteCategory(ctx context.Context, key string) (category.Category, error) {
	return s.repo.Delete(ctx, key)
}

// ListCategories returns the stored categories, or the built-in
// defaults when nothing has been configured yet.
func (s *CategoryService) ListCategories(ctx context.Context) ([]category.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return category.Defaults(), nil
	}

	return categories, nil
}

// Aggregate builds the merged channel list of one category: manual
// channels first, then the remote playlist's channels, with positional
// IDs assigned over the merged sequence. Results are cached per key;
// concurrent requests for the same cold key share a single fetch.
// A failed remote fetch degrades to the manual channels instead of
// failing the request.
// Returns category.ErrCategoryNotFound when the key is not configured.
func (s *CategoryService) Aggregate(ctx context.Context, key string) (category.Summary, error) {
	if summary, ok := s.cache.Get(key); ok {
		metrics.RecordCacheHit("category")
		return summary, nil
	}
	metrics.RecordCacheMiss("category")

	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.aggregate(ctx, key)
	})
	if err != nil {
		return category.Summary{}, err
	}

	return result.(category.Summary), nil
}

func (s *CategoryService) aggregate(ctx context.Context, key string) (category.Summary, error) {
	cat, err := s.findConfigured(ctx, key)
	if err != nil {
		return category.Summary{}, err
	}

	var remote []category.Channel
	if url := cat.PlaylistURL(); url != "" {
		tracks, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			metrics.RecordPlaylistFetch(key, "error")
			s.logger.Warn("playlist fetch failed, serving manual channels only",
				"category", key,
				"url", url,
				"error", err,
			)
		} else {
			metrics.RecordPlaylistFetch(key, "success")
			remote = channelsFromTracks(tracks)
		}
	}

	entries := category.BuildList(cat.Key(), cat.Channels(), remote)

	summary := category.Summary{
		Key:      cat.Key(),
		Label:    cat.Label(),
		Count:    len(entries),
		Channels: entries,
	}

	s.cache.Set(key, summary)

	return summary, nil
}

// findConfigured resolves a key against the stored categories,
// falling back to the built-in defaults when the store is empty.
func (s *CategoryService) findConfigured(ctx context.Context, key string) (category.Category, error) {
	cat, err := s.repo.FindByKey(ctx, key)
	if err == nil {
		return cat, nil
	}

	stored, listErr := s.repo.FindAll(ctx)
	if listErr != nil {
		return category.Category{}, listErr
	}
	if len(stored) > 0 {
		return category.Category{}, err
	}

	for _, def := range category.Defaults() {
		if def.Key() == key {
			return def, nil
		}
	}

	return category.Category{}, category.ErrCategoryNotFound
}

func channelsFromTracks(tracks []m3u.Track) []category.Channel {
	channels := make([]category.Channel, 0, len(tracks))
	for _, t := range tracks {
		ch, err := category.NewChannel(t.Title, t.URL, t.Logo, t.Group, "")
		if err != nil {
			continue
		}
		channels = append(channels, ch)
	}
	return channels
}
