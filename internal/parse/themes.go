// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ThemePage is one detected theme and the 1-based page number of the
// anchor page it was found on.
type ThemePage struct {
	Title string
	Page  int
}

// anchorRE matches the "Manualen som Værktøj" overview heading. The
// extractor occasionally ASCII-folds the Danish vowels, so both spellings
// are accepted.
var anchorRE = regexp.MustCompile(`(?i)MANUALEN\s*SOM\s*V[ÆA]RKT[ØO]J`)

// themeKeyword pairs a fixed theme title with the uppercase keywords that
// identify it on the anchor page. Order is the schema's fixed theme order.
type themeKeyword struct {
	title    string
	keywords []string
}

var themeKeywords = []themeKeyword{
	{title: "Det Sociale", keywords: []string{"DET SOCIALE"}},
	{title: "Indeklima, Energi og Miljø", keywords: []string{"INDEKLIMA", "ENERGI", "MILJØ"}},
	{title: "Materialer", keywords: []string{"MATERIALER"}},
}

// DefaultThemePages returns the three fixed themes anchored to page 1,
// used when detection finds nothing.
func DefaultThemePages() []ThemePage {
	return []ThemePage{
		{Title: "Det Sociale", Page: 1},
		{Title: "Indeklima, Energi og Miljø", Page: 1},
		{Title: "Materialer", Page: 1},
	}
}

// FindAnchorPage returns the 1-based page number of the "Manualen som
// Værktøj" overview page, or -1 when the heading is not present.
func FindAnchorPage(pages []string) int {
	for i, text := range pages {
		if text == "" {
			continue
		}
		if anchorRE.MatchString(text) {
			return i + 1
		}
	}
	return -1
}

// FindThemePages detects the manual's themes by scanning the anchor page
// for the known theme keywords. When the anchor page is missing the first
// eight pages are scanned instead, and when no keywords match at all the
// three default themes are returned. Progress notes go to w.
func FindThemePages(pages []string, w io.Writer) []ThemePage {
	anchor := FindAnchorPage(pages)

	var searchText string
	if anchor == -1 {
		fmt.Fprintln(w, "warning: overview page not found, scanning first 8 pages")
		end := len(pages)
		if end > 8 {
			end = 8
		}
		searchText = strings.Join(pages[:end], "\n")
	} else {
		searchText = pages[anchor-1]
	}
	searchText = strings.ToUpper(searchText)

	page := 1
	if anchor != -1 {
		page = anchor
	}

	var themes []ThemePage
	for _, tk := range themeKeywords {
		for _, k := range tk.keywords {
			if strings.Contains(searchText, k) {
				themes = append(themes, ThemePage{Title: tk.title, Page: page})
				break
			}
		}
	}

	if len(themes) == 0 {
		fmt.Fprintln(w, "warning: no themes detected, using defaults")
		return DefaultThemePages()
	}
	return themes
}

// CodeFromTitle maps a theme title to its two-letter code. Unknown titles
// get the placeholder code XX.
func CodeFromTitle(title string) string {
	upper := strings.ToUpper(title)
	switch {
	case strings.Contains(upper, "SOCIA"):
		return "DS"
	case strings.Contains(upper, "INDE"):
		return "IE"
	case strings.Contains(upper, "MATER"):
		return "MA"
	}
	return "XX"
}
