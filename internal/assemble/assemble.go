// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble nests parsed themes into the manual envelope, validates
// the result against the bovest schema, and writes the JSON files.
package assemble

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meshintel/manual-parser/internal/manifest"
	"github.com/meshintel/manual-parser/pkg/types"
)

// manualVersion is the semantic version stamped on generated documents.
const manualVersion = "1.0.0"

// now is swapped out by tests for deterministic timestamps.
var now = time.Now

// BuildManual wraps the themes in the versioned manual envelope. An empty
// description falls back to the manual's short name.
func BuildManual(meta manifest.ManualMeta, description string, themes []types.Theme) *types.Manual {
	if description == "" {
		description = meta.ShortName
	}
	if themes == nil {
		themes = []types.Theme{}
	}
	return &types.Manual{
		ID:          meta.ID,
		Name:        meta.Name,
		ShortName:   meta.ShortName,
		Group:       meta.Group,
		Description: description,
		Versions: []types.Version{
			{
				Version: manualVersion,
				Date:    now().UTC().Format(time.RFC3339),
				Themes:  themes,
			},
		},
	}
}

// Marshal renders a manual as indented UTF-8 JSON. HTML escaping is off
// because task-item texts carry literal markup like <strong>.
func Marshal(m *types.Manual) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manual %s: %w", m.ID, err)
	}
	return buf.Bytes(), nil
}

// WriteManual serializes the manual to path, optionally validating it
// against the bovest schema first. The output directory is created as
// needed.
func WriteManual(m *types.Manual, path string, validate bool) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	if validate {
		if err := Validate(data); err != nil {
			return fmt.Errorf("manual %s: %w", m.Name, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
