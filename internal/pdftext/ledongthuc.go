// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

// ledongthucExtractor is the default backend. It has the most accurate text
// extraction of the pure-Go readers and exposes positioned runs, which the
// table detector needs.
type ledongthucExtractor struct{}

func (ledongthucExtractor) Name() string { return "ledongthuc" }

func (ledongthucExtractor) ExtractPages(path string) ([]string, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// Image-only or damaged pages yield empty text.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (ledongthucExtractor) ExtractFragments(path string) ([][]Fragment, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([][]Fragment, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		content := p.Content()
		frags := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			frags = append(frags, Fragment{S: t.S, X: t.X, Y: t.Y, W: t.W})
		}
		pages = append(pages, frags)
	}
	return pages, nil
}
