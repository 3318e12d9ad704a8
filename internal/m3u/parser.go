package m3u

import (
	"bufio"
	"io"
	"strings"

	"github.com/grafana/regexp"
)

// Track is a single playlist entry as it appears in the M3U source:
// an #EXTINF metadata line followed by a stream URL line.
type Track struct {
	Title string
	Logo  string
	Group string
	URL   string
}

var (
	logoRe  = regexp.MustCompile(`(?i)tvg-logo="([^"]*)"`)
	groupRe = regexp.MustCompile(`(?i)group-title="([^"]*)"`)
)

// Parse reads M3U playlist text and returns the tracks in file order.
//
// Parsing is best-effort and never fails: an #EXTINF line with no
// following URL is dropped, a bare URL line with no preceding metadata
// is dropped, and unrecognized comment lines are skipped. A metadata
// line without a comma yields an empty title.
func Parse(r io.Reader) []Track {
	var tracks []Track
	var pending *Track

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#EXTINF") {
			pending = &Track{
				Title: extractTitle(line),
				Logo:  extractAttr(logoRe, line),
				Group: extractAttr(groupRe, line),
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			// Other directives (#EXTM3U, #EXTVLCOPT, ...) carry no
			// per-track data and do not reset pending metadata.
			continue
		}

		if pending == nil {
			// URL with no preceding metadata: malformed, skip it.
			continue
		}

		pending.URL = line
		tracks = append(tracks, *pending)
		pending = nil
	}

	// A scanner error (oversized line, broken reader) truncates the
	// result rather than failing: same degradation as a short file.
	return tracks
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) []Track {
	return Parse(strings.NewReader(s))
}

// extractTitle returns the display name portion of an #EXTINF line:
// everything after the last comma, trimmed.
func extractTitle(line string) string {
	idx := strings.LastIndex(line, ",")
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

func extractAttr(re *regexp.Regexp, line string) string {
	if m := re.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	return ""
}
