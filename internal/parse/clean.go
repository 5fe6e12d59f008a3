// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse implements the heuristic segmentation pipeline that turns
// raw per-page PDF text into the Theme → Criterion → Task Group → Task →
// Task Item hierarchy. The heuristics are tuned to the three BO-VEST
// manual layouts and fall back to hardcoded defaults rather than failing.
package parse

import (
	"regexp"
	"strings"
)

var (
	hyphenBreakRE = regexp.MustCompile(`-\n\s*`)
	blankRunRE    = regexp.MustCompile(`\n{2,}`)
)

// CleanText normalizes one page of extracted PDF text: carriage returns
// become newlines, hyphenated line breaks are joined, and runs of blank
// lines collapse to a single blank line.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "\n")
	s = hyphenBreakRE.ReplaceAllString(s, "")
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CleanPages applies CleanText to every page.
func CleanPages(pages []string) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = CleanText(p)
	}
	return out
}
