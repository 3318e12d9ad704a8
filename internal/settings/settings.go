package settings

import "errors"

// ErrNotConfigured signals that no settings document has been stored
// yet; callers fall back to Default.
var ErrNotConfigured = errors.New("site settings not configured")

// About is the editable "about us" section.
type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SocialLink is one social media presence toggle.
type SocialLink struct {
	Enabled  bool   `json:"enabled"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// Social groups the supported social platforms.
type Social struct {
	YouTube   SocialLink `json:"youtube"`
	Facebook  SocialLink `json:"facebook"`
	Instagram SocialLink `json:"instagram"`
}

// Settings is the single site-wide settings document.
type Settings struct {
	About  About  `json:"about"`
	Social Social `json:"social"`
}

// Default returns the settings served before an administrator stores
// anything.
func Default() Settings {
	return Settings{
		About: About{
			Title:   "About Us",
			Content: "Welcome to TV Stream. The best place to watch live TV, movies, and series.",
		},
		Social: Social{
			YouTube:   SocialLink{Enabled: true, URL: "https://youtube.com/@hackertrick", Username: "hackertrick"},
			Facebook:  SocialLink{Enabled: true, URL: "https://facebook.com/khazry.makoi", Username: "khazry makoi"},
			Instagram: SocialLink{Enabled: true, URL: "https://instagram.com/makoi_tz", Username: "makoi tz"},
		},
	}
}
