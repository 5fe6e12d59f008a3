// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
)

// dslipakExtractor is the fallback backend, mirroring the upstream tool's
// pdfplumber-then-PyPDF2 arrangement. It shares a font cache across pages
// because the manuals reuse the same embedded fonts throughout.
type dslipakExtractor struct{}

func (dslipakExtractor) Name() string { return "dslipak" }

func (dslipakExtractor) ExtractPages(path string) ([]string, error) {
	r, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	fonts := make(map[string]*dpdf.Font)
	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
