package category

import (
	"fmt"
	"strings"
)

// Record is a raw channel-like object as received from administrative
// payloads. Historical clients used several spellings for the same
// field, so each logical attribute is resolved from an ordered list of
// candidate keys, first non-empty match wins.
type Record map[string]any

// Candidate key lists per logical attribute, in resolution order.
var (
	titleAliases    = []string{"title", "name"}
	urlAliases      = []string{"url", "streamUrl", "playlistUrl"}
	logoAliases     = []string{"logo", "icon"}
	groupAliases    = []string{"group", "genre"}
	languageAliases = []string{"language", "lang"}
)

func (r Record) resolve(aliases []string) string {
	for _, key := range aliases {
		if v, ok := r[key]; ok {
			if s, ok := v.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

// ChannelFromRecord normalizes a raw record into a Channel. index is
// the record's position in its list and feeds the positional title
// placeholder. Returns false when no URL resolves from any alias, in
// which case the record is dropped.
func ChannelFromRecord(rec Record, index int) (Channel, bool) {
	url := rec.resolve(urlAliases)
	if url == "" {
		return Channel{}, false
	}

	title := rec.resolve(titleAliases)
	if title == "" {
		title = fmt.Sprintf("Channel %d", index+1)
	}

	ch, err := NewChannel(title, url, rec.resolve(logoAliases), rec.resolve(groupAliases), rec.resolve(languageAliases))
	if err != nil {
		return Channel{}, false
	}
	return ch, true
}

// Payload is the administrative request body for creating or updating
// a category. Field aliasing mirrors the historical clients: label or
// title, key or slug, playlistUrl or url or playlist.
type Payload struct {
	Label       string   `json:"label"`
	Title       string   `json:"title"`
	Key         string   `json:"key"`
	Slug        string   `json:"slug"`
	PlaylistURL string   `json:"playlistUrl"`
	URL         string   `json:"url"`
	Playlist    string   `json:"playlist"`
	Channels    []Record `json:"channels"`
	Count       int      `json:"count"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Normalize resolves the payload's aliases and builds a canonical
// Category. fallbackKey takes precedence over deriving the key from
// the label, matching update operations where the key is fixed by the
// request path. Invalid channel records are dropped, never stored.
func (p Payload) Normalize(fallbackKey string) (Category, error) {
	label := firstNonEmpty(p.Label, p.Title)
	if label == "" {
		return Category{}, ErrEmptyLabel
	}

	requestedKey := firstNonEmpty(p.Key, p.Slug, fallbackKey)
	playlistURL := firstNonEmpty(p.PlaylistURL, p.URL, p.Playlist)

	var channels []Channel
	for i, rec := range p.Channels {
		if ch, ok := ChannelFromRecord(rec, i); ok {
			channels = append(channels, ch)
		}
	}

	return New(label, requestedKey, playlistURL, channels, p.Count)
}
