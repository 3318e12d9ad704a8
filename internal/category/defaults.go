package category

// Defaults returns the built-in iptv-org categories served when the
// administrative store holds no categories yet. Counts are size hints
// from the upstream playlists, not live values.
func Defaults() []Category {
	defaults := []struct {
		key   string
		label string
		url   string
		count int
	}{
		{"lifestyle", "Lifestyle", "https://iptv-org.github.io/iptv/categories/lifestyle.m3u", 70},
		{"movies", "Movies", "https://iptv-org.github.io/iptv/categories/movies.m3u", 265},
		{"music", "Music", "https://iptv-org.github.io/iptv/categories/music.m3u", 396},
		{"news", "News", "https://iptv-org.github.io/iptv/categories/news.m3u", 502},
		{"outdoor", "Outdoor", "https://iptv-org.github.io/iptv/categories/outdoor.m3u", 42},
		{"relax", "Relax", "https://iptv-org.github.io/iptv/categories/relax.m3u", 15},
		{"religious", "Religious", "https://iptv-org.github.io/iptv/categories/religious.m3u", 310},
		{"series", "Series", "https://iptv-org.github.io/iptv/categories/series.m3u", 166},
		{"science", "Science", "https://iptv-org.github.io/iptv/categories/science.m3u", 23},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			key:         d.key,
			label:       d.label,
			playlistURL: d.url,
			count:       d.count,
		})
	}
	return categories
}
