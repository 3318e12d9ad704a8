package category

import (
	"errors"
	"strings"

	"github.com/grafana/regexp"
)

// Domain errors
var (
	ErrEmptyLabel            = errors.New("category label cannot be empty")
	ErrNoSource              = errors.New("category needs a playlist URL or at least one manual channel")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrEmptyURL              = errors.New("channel URL cannot be empty")
)

// Channel is a manually curated channel inside a category. Its URL is
// always non-empty; records without a resolvable URL are rejected at
// construction and never stored.
type Channel struct {
	title    string
	url      string
	logo     string
	group    string
	language string
}

// NewChannel creates a Channel, trimming all fields.
// Returns ErrEmptyURL if the URL is empty or whitespace.
func NewChannel(title, url, logo, group, language string) (Channel, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Channel{}, ErrEmptyURL
	}
	return Channel{
		title:    strings.TrimSpace(title),
		url:      url,
		logo:     strings.TrimSpace(logo),
		group:    strings.TrimSpace(group),
		language: strings.TrimSpace(language),
	}, nil
}

func (c Channel) Title() string    { return c.title }
func (c Channel) URL() string      { return c.url }
func (c Channel) Logo() string     { return c.logo }
func (c Channel) Group() string    { return c.group }
func (c Channel) Language() string { return c.language }

// Category is an administrator-defined bucket of channels, identified
// by a unique slug key. It may carry manually curated channels, a
// remote M3U playlist URL, or both.
type Category struct {
	key         string
	label       string
	playlistURL string
	channels    []Channel
	count       int
}

// New creates a Category. The key is slugified from requestedKey, or
// from the label when no key is requested. countHint is only used when
// there are no manual channels; it is a stale size hint for the UI, not
// an invariant.
func New(label, requestedKey, playlistURL string, channels []Channel, countHint int) (Category, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Category{}, ErrEmptyLabel
	}

	requestedKey = strings.TrimSpace(requestedKey)
	if requestedKey == "" {
		requestedKey = label
	}
	key := Slugify(requestedKey)

	playlistURL = strings.TrimSpace(playlistURL)
	if playlistURL == "" && len(channels) == 0 {
		return Category{}, ErrNoSource
	}

	count := len(channels)
	if count == 0 {
		count = countHint
	}

	return Category{
		key:         key,
		label:       label,
		playlistURL: playlistURL,
		channels:    channels,
		count:       count,
	}, nil
}

func (c Category) Key() string         { return c.key }
func (c Category) Label() string       { return c.label }
func (c Category) PlaylistURL() string { return c.playlistURL }
func (c Category) Channels() []Channel { return c.channels }
func (c Category) Count() int          { return c.count }

var slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the value, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims leading/trailing hyphens.
// An empty result falls back to "category".
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugInvalidRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "category"
	}
	return s
}
