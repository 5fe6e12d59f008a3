// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// criterionKeywords are the uppercase phrases that mark a criterion heading
// line inside a theme's page window.
var criterionKeywords = []string{
	"LIVET MELLEM",
	"BYGNINGER",
	"ENERGI",
	"SUNDT BYGGERI",
	"MATERIALER",
}

// DefaultCriterion is used when a theme window contains no criterion
// heading at all.
const DefaultCriterion = "Livet Mellem Naboer"

// DetectCriteria scans a theme's text window for criterion heading lines.
// A heading is any line containing one of the known keyword phrases; the
// text before a trailing colon is the criterion title. Duplicates are
// dropped, order of first appearance is kept, and the default criterion is
// returned when nothing matches.
func DetectCriteria(chunk string) []string {
	var criteria []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(chunk, "\n") {
		upper := strings.ToUpper(line)
		matched := false
		for _, k := range criterionKeywords {
			if strings.Contains(upper, k) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		title, _, _ := strings.Cut(strings.TrimSpace(line), ":")
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		criteria = append(criteria, title)
	}

	if len(criteria) == 0 {
		criteria = append(criteria, DefaultCriterion)
	}
	return criteria
}

// TaskMatch is one numbered task heading found in a theme window.
type TaskMatch struct {
	Code  string
	Title string
}

// taskRE matches a one- or two-digit task number followed by its title,
// either on the same line after a dash or on the next line.
var taskRE = regexp.MustCompile(`\b(0?\d{1,2})\b\s*[-–]?\s*(.{5,80})`)

// ExtractTasks finds the numbered tasks ("01 Fælles gård", ...) in a theme
// window. Codes are normalized to exactly two digits: one-digit matches are
// zero-padded and a leading-zero three-digit match like "012" keeps its last
// two digits, so assembled documents always carry two-digit codes. The
// manuals are not consistent about unique or sequential numbers, so neither
// is checked.
func ExtractTasks(chunk string) []TaskMatch {
	matches := taskRE.FindAllStringSubmatch(chunk, -1)
	tasks := make([]TaskMatch, 0, len(matches))
	for _, m := range matches {
		code := m[1]
		switch {
		case len(code) == 1:
			code = "0" + code
		case len(code) > 2:
			code = code[len(code)-2:]
		}
		tasks = append(tasks, TaskMatch{
			Code:  code,
			Title: strings.TrimSpace(m[2]),
		})
	}
	return tasks
}
