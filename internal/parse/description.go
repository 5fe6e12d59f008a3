// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// descriptionRE isolates the lead sentence on the title page. The
	// hyphen in BO-VEST is sometimes dropped by the extractor.
	descriptionRE = regexp.MustCompile(`(?i)(BO-?VEST\s+bæredygtighedsmanual[^.]*\.)`)

	// headerRE and footerRE match the page-1 boilerplate around the
	// description sentence.
	headerRE = regexp.MustCompile(`(?i)Bæredygtigheds\s*Manual\s*(NYBYG|RENOVERING|SIMPEL\s*SAG)?`)
	footerRE = regexp.MustCompile(`(?i)Tegnestuen\s*Vandkunsten\s*Oktober\s*\d{4}`)

	symbolRunRE = regexp.MustCompile(`[>/]+`)
	spaceRunRE  = regexp.MustCompile(`\s{2,}`)
)

// ExtractDescription pulls the manual's description sentence out of the
// noisy title-page text. The title page render doubles every glyph
// ("TTeeggnneessttuueenn"), so repeated word characters are collapsed
// first. The function never fails: when no description sentence is found
// it returns the cleaned input instead.
func ExtractDescription(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	text = collapseRepeats(text)
	text = symbolRunRE.ReplaceAllString(text, "")

	description := text
	if m := descriptionRE.FindStringSubmatch(text); m != nil {
		description = m[1]
	}

	// The header pattern also eats "bæredygtighedsmanual" inside the
	// matched sentence; the final replacement puts it back.
	description = headerRE.ReplaceAllString(description, "")
	description = footerRE.ReplaceAllString(description, "")
	description = strings.TrimSpace(spaceRunRE.ReplaceAllString(description, " "))
	description = strings.ReplaceAll(description, "BO-VEST", "BO-VEST bæredygtighedsmanual")

	return description
}

// collapseRepeats reduces runs of the same word character to a single
// occurrence. Punctuation and whitespace runs are left alone.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev && isWordRune(r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
