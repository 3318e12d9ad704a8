package application

import (
	"context"

	"tvstream/internal/port/driven"
	"tvstream/internal/stream"
)

// StreamService provides use cases for the curated stream catalog.
type StreamService struct {
	repo driven.StreamRepository
}

// NewStreamService creates a new StreamService with the given
// repository.
func NewStreamService(repo driven.StreamRepository) *StreamService {
	return &StreamService{repo: repo}
}

// StreamPatch carries a partial update. Nil fields keep the stored
// value.
type StreamPatch struct {
	Title       *string `json:"title"`
	StreamURL   *string `json:"streamUrl"`
	Category    *string `json:"category"`
	Thumbnail   *string `json:"thumbnail"`
	Year        *string `json:"year"`
	Rating      *string `json:"rating"`
	Description *string `json:"description"`
	Quality     *string `json:"quality"`
	Genre       *string `json:"genre"`
	IsFeatured  *bool   `json:"isFeatured"`
}

// CatalogItem is the public per-category projection of a stream.
type CatalogItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	StreamURL string `json:"streamUrl"`
	Year      string `json:"year"`
	Rating    string `json:"rating"`
}

// CatalogBucket groups the catalog items of one fixed category.
type CatalogBucket struct {
	Title string        `json:"title"`
	Items []CatalogItem `json:"items"`
}

// LiveStream is the public projection of a featured stream.
type LiveStream struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StreamURL   string `json:"streamUrl"`
	Quality     string `json:"quality"`
	Genre       string `json:"genre"`
}

// PublicCatalog is the response shape of the public stream listing.
type PublicCatalog struct {
	LiveStreams  []LiveStream             `json:"liveStreams"`
	CategoryData map[string]CatalogBucket `json:"categoryData"`
}

// ListStreams retrieves the full curated list for the admin dashboard.
func (s *StreamService) ListStreams(ctx context.Context) ([]stream.Stream, error) {
	streams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if streams == nil {
		streams = []stream.Stream{}
	}
	return streams, nil
}

// CreateStream validates the candidate, carries over its optional
// fields and assigns the next sequential ID (highest stored ID plus
// one).
// Returns stream.ErrMissingFields when title, URL or category is empty.
func (s *StreamService) CreateStream(ctx context.Context, candidate stream.Stream) (stream.Stream, error) {
	created, err := stream.New(candidate.Title, candidate.StreamURL, candidate.Category)
	if err != nil {
		return stream.Stream{}, err
	}

	if candidate.Thumbnail != "" {
		created.Thumbnail = candidate.Thumbnail
	}
	if candidate.Quality != "" {
		created.Quality = candidate.Quality
	}
	created.Year = candidate.Year
	created.Rating = candidate.Rating
	created.Description = candidate.Description
	created.Genre = candidate.Genre
	created.IsFeatured = candidate.IsFeatured

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return stream.Stream{}, err
	}

	maxID := 0
	for _, st := range existing {
		if st.ID > maxID {
			maxID = st.ID
		}
	}
	created.ID = maxID + 1

	if err := s.repo.Save(ctx, created); err != nil {
		return stream.Stream{}, err
	}

	return created, nil
}

// UpdateStream applies a partial update to a stored stream.
// Returns stream.ErrStreamNotFound if no stream has that ID.
func (s *StreamService) UpdateStream(ctx context.Context, id int, patch StreamPatch) (stream.Stream, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return stream.Stream{}, err
	}

	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.StreamURL != nil {
		current.StreamURL = *patch.StreamURL
	}
	if patch.Category != nil {
		current.Category = *patch.Category
	}
	if patch.Thumbnail != nil {
		current.Thumbnail = *patch.Thumbnail
	}
	if patch.Year != nil {
		current.Year = *patch.Year
	}
	if patch.Rating != nil {
		current.Rating = *patch.Rating
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Quality != nil {
		current.Quality = *patch.Quality
	}
	if patch.Genre != nil {
		current.Genre = *patch.Genre
	}
	if patch.IsFeatured != nil {
		current.IsFeatured = *patch.IsFeatured
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return stream.Stream{}, err
	}

	return current, nil
}

// DeleteStream removes a stream by ID and returns the removed value.
func (s *StreamService) DeleteStream(ctx context.Context, id int) (stream.Stream, error) {
	return s.repo.Delete(ctx, id)
}

// Catalog builds the public catalog: featured streams as liveStreams
// plus every fixed category bucket, empty buckets included.
func (s *StreamService) Catalog(ctx context.Context) (PublicCatalog, error) {
	streams, err := s.repo.FindAll(ctx)
	if err != nil {
		return PublicCatalog{}, err
	}

	catalog := PublicCatalog{
		LiveStreams:  []LiveStream{},
		CategoryData: make(map[string]CatalogBucket, len(stream.Catalog)),
	}

	for _, cat := range stream.Catalog {
		items := []CatalogItem{}
		for _, st := range streams {
			if st.Category != cat.ID {
				continue
			}
			items = append(items, CatalogItem{
				ID:        st.ID,
				Title:     st.Title,
				Thumbnail: st.Thumbnail,
				StreamURL: st.StreamURL,
				Year:      st.Year,
				Rating:    st.Rating,
			})
		}
		catalog.CategoryData[cat.ID] = CatalogBucket{Title: cat.Title, Items: items}
	}

	for _, st := range streams {
		if !st.IsFeatured {
			continue
		}
		quality := st.Quality
		if quality == "" {
			quality = "Auto"
		}
		catalog.LiveStreams = append(catalog.LiveStreams, LiveStream{
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			StreamURL:   st.StreamURL,
			Quality:     quality,
			Genre:       st.Genre,
		})
	}

	return catalog, nil
}
