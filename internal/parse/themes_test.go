// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"io"
	"testing"
)

func TestFindAnchorPage(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  int
	}{
		{
			name:  "anchor on second page",
			pages: []string{"forside", "MANUALEN SOM VÆRKTØJ\nindhold"},
			want:  2,
		},
		{
			name:  "mixed case with folded vowels",
			pages: []string{"Manualen som Varktoj"},
			want:  1,
		},
		{
			name:  "spacing variations",
			pages: []string{"MANUALEN  SOM\nVÆRKTØJ"},
			want:  1,
		},
		{
			name:  "missing anchor",
			pages: []string{"forside", "indhold"},
			want:  -1,
		},
		{
			name:  "empty document",
			pages: nil,
			want:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindAnchorPage(tt.pages); got != tt.want {
				t.Errorf("FindAnchorPage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindThemePages(t *testing.T) {
	anchorPage := "MANUALEN SOM VÆRKTØJ\nDET SOCIALE\nINDEKLIMA, ENERGI OG MILJØ\nMATERIALER"

	t.Run("all three themes on the anchor page", func(t *testing.T) {
		pages := []string{"forside", anchorPage, "andet"}
		got := FindThemePages(pages, io.Discard)

		want := []ThemePage{
			{Title: "Det Sociale", Page: 2},
			{Title: "Indeklima, Energi og Miljø", Page: 2},
			{Title: "Materialer", Page: 2},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d themes, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("theme %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("single keyword yields single theme", func(t *testing.T) {
		pages := []string{"MANUALEN SOM VÆRKTØJ\nMATERIALER"}
		got := FindThemePages(pages, io.Discard)
		if len(got) != 1 || got[0].Title != "Materialer" || got[0].Page != 1 {
			t.Errorf("got %+v, want single Materialer theme on page 1", got)
		}
	})

	t.Run("no anchor falls back to scanning the first pages", func(t *testing.T) {
		pages := []string{"noget", "DET SOCIALE overskrift", "mere"}
		got := FindThemePages(pages, io.Discard)
		if len(got) != 1 || got[0].Title != "Det Sociale" || got[0].Page != 1 {
			t.Errorf("got %+v, want Det Sociale on page 1", got)
		}
	})

	t.Run("keywords beyond page 8 are not scanned without anchor", func(t *testing.T) {
		pages := make([]string, 12)
		pages[10] = "MATERIALER"
		got := FindThemePages(pages, io.Discard)
		// Nothing in the first 8 pages: the defaults apply.
		if len(got) != 3 {
			t.Fatalf("got %d themes, want the 3 defaults", len(got))
		}
	})

	t.Run("no keywords anywhere returns the defaults", func(t *testing.T) {
		pages := []string{"forside", "indhold", "afslutning"}
		got := FindThemePages(pages, io.Discard)

		want := DefaultThemePages()
		if len(got) != len(want) {
			t.Fatalf("got %d themes, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("theme %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("anchor page without keywords returns the defaults", func(t *testing.T) {
		pages := []string{"MANUALEN SOM VÆRKTØJ\nintet tema her"}
		got := FindThemePages(pages, io.Discard)
		if len(got) != 3 {
			t.Fatalf("got %d themes, want the 3 defaults", len(got))
		}
	})
}

func TestCodeFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Det Sociale", "DS"},
		{"det sociale", "DS"},
		{"Indeklima, Energi og Miljø", "IE"},
		{"Materialer", "MA"},
		{"Ukendt Tema", "XX"},
		{"", "XX"},
	}
	for _, tt := range tests {
		if got := CodeFromTitle(tt.title); got != tt.want {
			t.Errorf("CodeFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
