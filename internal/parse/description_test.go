// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"testing"
)

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "isolates description sentence from title page",
			in:   "Bæredygtigheds Manual NYBYG\nBO-VEST bæredygtighedsmanual er et værktøj til fælles brug.\nTegnestuen Vandkunsten Oktober 2023",
			want: "BO-VEST bæredygtighedsmanual er et værktøj til fæles brug.",
		},
		{
			name: "collapses doubled glyphs",
			in:   "BBOO-VVEESSTT  bbæærreeddyyggttiigghheeddssmmaannuuaall  ggæællddeerr  aallee  bbyyggggeerriieerr..",
			want: "BO-VEST bæredygtighedsmanual gælder ale bygerier.",
		},
		{
			name: "strips angle and slash symbols",
			in:   ">> BO-VEST bæredygtighedsmanual // beskriver krav.",
			want: "BO-VEST bæredygtighedsmanual beskriver krav.",
		},
		{
			name: "no description sentence returns cleaned input",
			in:   "en side uden det kendte mønster",
			want: "en side uden det kendte mønster",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.in); got != tt.want {
				t.Errorf("ExtractDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Description extraction is best-effort: whatever the input, it must come
// back as a plain single-line string.
func TestExtractDescriptionNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		strings.Repeat(">", 1000),
		"BO-VEST",
		"BO-VEST bæredygtighedsmanual uden punktum",
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		got := ExtractDescription(in)
		if strings.Contains(got, "\n") {
			t.Errorf("ExtractDescription(%q) contains newline: %q", in, got)
		}
	}
}

func TestCollapseRepeats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TTeeggnneessttuueenn", "Tegnestuen"},
		{"abc", "abc"},
		{"a  b", "a  b"},
		{"....", "...."},
		{"1123", "123"},
	}
	for _, tt := range tests {
		if got := collapseRepeats(tt.in); got != tt.want {
			t.Errorf("collapseRepeats(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
