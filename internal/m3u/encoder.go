package m3u

import (
	"fmt"
	"io"
)

// Encoder builds an M3U playlist from tracks.
type Encoder struct {
	tracks []Track
}

func NewEncoder() *Encoder {
	return &Encoder{tracks: []Track{}}
}

// Add appends a track to the playlist.
func (e *Encoder) Add(t Track) {
	e.tracks = append(e.tracks, t)
}

// Encode writes the playlist, one #EXTINF/URL pair per track.
func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, t := range e.tracks {
		if err := encodeTrack(w, t); err != nil {
			return err
		}
	}

	return nil
}

func encodeTrack(w io.Writer, t Track) error {
	if _, err := fmt.Fprintf(w, "#EXTINF:-1"); err != nil {
		return err
	}

	if t.Logo != "" {
		if _, err := fmt.Fprintf(w, " tvg-logo=%q", t.Logo); err != nil {
			return err
		}
	}

	if t.Group != "" {
		if _, err := fmt.Fprintf(w, " group-title=%q", t.Group); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, ",%s\n%s\n", t.Title, t.URL); err != nil {
		return err
	}

	return nil
}
