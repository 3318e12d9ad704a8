package stream

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrMissingFields       = errors.New("title, streamUrl and category are required")
	ErrStreamNotFound      = errors.New("stream not found")
	ErrStreamAlreadyExists = errors.New("stream already exists")
)

// DefaultThumbnail is applied when a curated entry is created without
// artwork.
const DefaultThumbnail = "https://via.placeholder.com/300x450/667eea/ffffff?text=TV+Stream"

// Stream is one curated catalog entry maintained by the administrator.
// IDs are small sequential integers assigned at creation time.
type Stream struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	StreamURL   string `json:"streamUrl"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	Year        string `json:"year"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	Quality     string `json:"quality"`
	Genre       string `json:"genre"`
	IsFeatured  bool   `json:"isFeatured"`
}

// New validates and defaults a curated entry. The ID is assigned later
// by the service, from the highest stored ID plus one.
func New(title, streamURL, category string) (Stream, error) {
	title = strings.TrimSpace(title)
	streamURL = strings.TrimSpace(streamURL)
	category = strings.TrimSpace(category)
	if title == "" || streamURL == "" || category == "" {
		return Stream{}, ErrMissingFields
	}

	return Stream{
		Title:     title,
		StreamURL: streamURL,
		Category:  category,
		Thumbnail: DefaultThumbnail,
		Quality:   "Auto",
	}, nil
}

// CatalogCategory is one fixed bucket of the curated catalog. The list
// is shared by the public API and the admin dashboard so both stay in
// sync.
type CatalogCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Catalog is the fixed category configuration for curated streams.
var Catalog = []CatalogCategory{
	{ID: "live-tv", Title: "Live TV Channels"},
	{ID: "local-tv", Title: "Local TV"},
	{ID: "international-tv", Title: "International TV"},
	{ID: "movies", Title: "Movies"},
	{ID: "series", Title: "TV Series"},
	{ID: "cartoons", Title: "Cartoons & Kids"},
	{ID: "sports", Title: "Sports Channels"},
	{ID: "news", Title: "News Channels"},
	{ID: "documentary", Title: "Documentary"},
	{ID: "music", Title: "Music Videos"},
	{ID: "gospel", Title: "Gospel & Inspiration"},
	{ID: "education", Title: "Education & Learning"},
	{ID: "radio", Title: "Radio Stations"},
}
