// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts per-page text from the manual PDFs with
// pluggable backends.
package pdftext

import (
	"fmt"

	"github.com/meshintel/manual-parser/pkg/types"
)

// Extractor returns one text string per page of a PDF. A page whose text
// cannot be decoded contributes an empty string rather than an error, so a
// damaged manual still yields best-effort output downstream.
type Extractor interface {
	// Name identifies the backend library.
	Name() string

	// ExtractPages reads the PDF at path and returns its page texts in
	// document order.
	ExtractPages(path string) ([]string, error)
}

// Fragment is one positioned text run on a page, in PDF user-space
// coordinates (origin bottom-left). W is the advance width of the run.
type Fragment struct {
	S string
	X float64
	Y float64
	W float64
}

// FragmentExtractor is implemented by backends that expose positioned text
// runs. The table detector needs coordinates; backends without them simply
// skip table enrichment.
type FragmentExtractor interface {
	// ExtractFragments returns the positioned text runs per page.
	ExtractFragments(path string) ([][]Fragment, error)
}

// New returns the extractor for the configured backend.
func New(backend types.ExtractBackend) (Extractor, error) {
	switch backend {
	case types.BackendLedongthuc, "":
		return ledongthucExtractor{}, nil
	case types.BackendDslipak:
		return dslipakExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extract backend %q (want ledongthuc or dslipak)", backend)
	}
}
