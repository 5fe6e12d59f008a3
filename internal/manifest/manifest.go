// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest maps source PDF files to their manual metadata. The
// three known manuals ship with built-in metadata; a YAML manifest can
// override it or add further manuals.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// Known manual keys.
const (
	KeyNybyg      = "NYBYG"
	KeySimpelSag  = "SIMPEL SAG"
	KeyRenovering = "RENOVERING"
	KeyUnknown    = "UNKNOWN"
)

// ManualMeta is the metadata carried into the assembled JSON for one manual.
type ManualMeta struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	ShortName string `yaml:"shortName"`
	Group     string `yaml:"group"`
	URLBase   string `yaml:"url_base"`
}

// Manifest maps manual keys to their metadata.
type Manifest struct {
	Manuals map[string]ManualMeta `yaml:"manuals"`
}

// Default returns the built-in metadata for the three hosted BO-VEST
// manuals. The ids and URLs come from the published manual bundle.
func Default() *Manifest {
	return &Manifest{
		Manuals: map[string]ManualMeta{
			KeyNybyg: {
				ID:      "f7a3e8b2-9c4d-4f1a-8e5c-2d6b9a1c7f3e",
				URLBase: "https://storage.googleapis.com/custom-css/f7a3e8b2-9c4d-4f1a-8e5c-2d6b9a1c7f3e/B%C3%A6redygtighedsmanual%20-%20Nybyg.pdf",
			},
			KeySimpelSag: {
				ID:      "f7a3b8e5-4c2d-4f1b-9e6a-3d8c7b2f1a5e",
				URLBase: "https://storage.googleapis.com/custom-css/f7a3b8e5-4c2d-4f1b-9e6a-3d8c7b2f1a5e/B%C3%A6redygtighedsmanual%20-%20Simpel%20sag.pdf",
			},
			KeyRenovering: {
				ID:      "2b9d4e7c-6a1f-4d3b-8c5e-9f2a7b4d1c6e",
				URLBase: "https://storage.googleapis.com/custom-css/2b9d4e7c-6a1f-4d3b-8c5e-9f2a7b4d1c6e/B%C3%A6redygtighedsmanual%20-%20Renovering.pdf",
			},
		},
	}
}

// Load reads a YAML manifest and overlays it on the built-in defaults, so
// a partial manifest only overrides what it names.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var overlay Manifest
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	m := Default()
	for key, meta := range overlay.Manuals {
		base := m.Manuals[key]
		if meta.ID != "" {
			base.ID = meta.ID
		}
		if meta.Name != "" {
			base.Name = meta.Name
		}
		if meta.ShortName != "" {
			base.ShortName = meta.ShortName
		}
		if meta.Group != "" {
			base.Group = meta.Group
		}
		if meta.URLBase != "" {
			base.URLBase = meta.URLBase
		}
		m.Manuals[key] = base
	}
	return m, nil
}

// MatchKey classifies a PDF path by its filename stem: NYBYG, SIMPEL SAG,
// RENOVERING, or UNKNOWN.
func MatchKey(pdfPath string) string {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	upper := strings.ToUpper(stem)
	switch {
	case strings.Contains(upper, "NYBYG"):
		return KeyNybyg
	case strings.Contains(upper, "SIMP"), strings.Contains(upper, "SAG"):
		return KeySimpelSag
	case strings.Contains(upper, "RENOV"):
		return KeyRenovering
	}
	return KeyUnknown
}

// Match resolves a PDF path to its manual key and complete metadata.
// Unknown manuals get a fresh id and a file:// URL so parsing still
// produces schema-valid output.
func (m *Manifest) Match(pdfPath string) (string, ManualMeta) {
	key := MatchKey(pdfPath)
	meta, ok := m.Manuals[key]
	if !ok {
		meta = ManualMeta{
			ID:      uuid.NewString(),
			URLBase: "file://" + pdfPath,
		}
	}

	title := TitleCase(key)
	if meta.Name == "" {
		meta.Name = "BO-VEST " + title
	}
	if meta.ShortName == "" {
		meta.ShortName = title
	}
	if meta.Group == "" {
		meta.Group = "bovest"
	}
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	return key, meta
}

// OutputFileName returns the JSON file name for a manual key
// ("SIMPEL SAG" → "bovest-simpel-sag.json").
func OutputFileName(key string) string {
	return "bovest-" + strings.ReplaceAll(strings.ToLower(key), " ", "-") + ".json"
}

// TitleCase capitalizes each space-separated word of an uppercase key
// ("SIMPEL SAG" → "Simpel Sag").
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
