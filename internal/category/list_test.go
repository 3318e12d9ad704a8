package category

import (
	"fmt"
	"testing"
)

func mustChannel(t *testing.T, title, url string) Channel {
	t.Helper()
	ch, err := NewChannel(title, url, "", "", "")
	if err != nil {
		t.Fatalf("failed to build channel: %v", err)
	}
	return ch
}

func TestBuildList(t *testing.T) {
	t.Run("manual channels come before remote channels", func(t *testing.T) {
		manual := []Channel{
			mustChannel(t, "Manual1", "http://m1"),
			mustChannel(t, "Manual2", "http://m2"),
		}
		remote := []Channel{
			mustChannel(t, "Remote1", "http://r1"),
		}

		entries := BuildList("news", manual, remote)
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}

		wantTitles := []string{"Manual1", "Manual2", "Remote1"}
		for i, title := range wantTitles {
			if entries[i].Title != title {
				t.Errorf("entry %d: expected title %q, got %q", i, title, entries[i].Title)
			}
		}
	})

	t.Run("assigns unique positional ids over the merged sequence", func(t *testing.T) {
		manual := []Channel{mustChannel(t, "Manual1", "http://m1")}
		remote := []Channel{mustChannel(t, "Remote1", "http://r1"), mustChannel(t, "Remote2", "http://r2")}

		entries := BuildList("news", manual, remote)

		seen := make(map[string]bool)
		for i, e := range entries {
			want := fmt.Sprintf("news-%d", i)
			if e.ID != want {
				t.Errorf("entry %d: expected id %q, got %q", i, want, e.ID)
			}
			if seen[e.ID] {
				t.Errorf("duplicate id %q", e.ID)
			}
			seen[e.ID] = true
		}
	})

	t.Run("fills untitled channels with a positional placeholder", func(t *testing.T) {
		untitled, err := NewChannel("", "http://r1", "", "", "")
		if err != nil {
			t.Fatalf("failed to build channel: %v", err)
		}
		remote := []Channel{untitled, mustChannel(t, "Remote2", "http://r2")}

		entries := BuildList("news", []Channel{mustChannel(t, "Manual1", "http://m1")}, remote)

		if entries[1].Title != "Channel 2" {
			t.Errorf("expected title Channel 2, got %q", entries[1].Title)
		}
		if entries[2].Title != "Remote2" {
			t.Errorf("expected title Remote2, got %q", entries[2].Title)
		}
	})

	t.Run("applies the placeholder logo at render time", func(t *testing.T) {
		withLogo, err := NewChannel("HasLogo", "http://a", "http://logo", "", "")
		if err != nil {
			t.Fatalf("failed to build channel: %v", err)
		}

		entries := BuildList("news", []Channel{withLogo, mustChannel(t, "NoLogo", "http://b")}, nil)
		if entries[0].Logo != "http://logo" {
			t.Errorf("expected original logo, got %q", entries[0].Logo)
		}
		if entries[1].Logo != FallbackLogoURL {
			t.Errorf("expected fallback logo, got %q", entries[1].Logo)
		}
	})

	t.Run("empty inputs yield an empty non-nil list", func(t *testing.T) {
		entries := BuildList("news", nil, nil)
		if entries == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(entries) != 0 {
			t.Errorf("expected empty list, got %d entries", len(entries))
		}
	})
}
