package category

import "fmt"

// FallbackLogoURL is the placeholder applied to channels without a
// logo when a merged list is rendered. Stored records stay logo-agnostic.
const FallbackLogoURL = "https://via.placeholder.com/50x50/333/fff?text=TV"

// Entry is one channel in a rendered category list. The ID is
// positional within a single snapshot and is not stable across
// re-fetches if the upstream playlist order changes.
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Logo     string `json:"logo"`
	Group    string `json:"group"`
	Language string `json:"language,omitempty"`
}

// Summary is the aggregated view of a category returned to callers.
type Summary struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Channels []Entry `json:"channels"`
}

// BuildList merges manual channels (in configured order) ahead of
// remotely parsed channels (in parse order) and assigns positional
// "{key}-{index}" IDs over the merged sequence. Channels without a
// logo get the rendering placeholder; untitled channels get a
// positional "Channel N" title.
func BuildList(key string, manual, remote []Channel) []Entry {
	entries := make([]Entry, 0, len(manual)+len(remote))

	for _, ch := range manual {
		entries = append(entries, entryFor(key, len(entries), ch))
	}
	for _, ch := range remote {
		entries = append(entries, entryFor(key, len(entries), ch))
	}

	return entries
}

func entryFor(key string, index int, ch Channel) Entry {
	logo := ch.Logo()
	if logo == "" {
		logo = FallbackLogoURL
	}
	title := ch.Title()
	if title == "" {
		title = fmt.Sprintf("Channel %d", index+1)
	}
	return Entry{
		ID:       fmt.Sprintf("%s-%d", key, index),
		Title:    title,
		URL:      ch.URL(),
		Logo:     logo,
		Group:    ch.Group(),
		Language: ch.Language(),
	}
}
