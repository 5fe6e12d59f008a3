// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMatchKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Bæredygtighedsmanual - Nybyg.pdf", KeyNybyg},
		{"manuals/pdf/nybyg-2023.pdf", KeyNybyg},
		{"Bæredygtighedsmanual - Simpel sag.pdf", KeySimpelSag},
		{"SIMPEL_SAG.pdf", KeySimpelSag},
		{"sag.pdf", KeySimpelSag},
		{"Bæredygtighedsmanual - Renovering.pdf", KeyRenovering},
		{"renovering_v2.PDF", KeyRenovering},
		{"some-other-manual.pdf", KeyUnknown},
		{"", KeyUnknown},
	}
	for _, tt := range tests {
		if got := MatchKey(tt.path); got != tt.want {
			t.Errorf("MatchKey(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMatchKnownManual(t *testing.T) {
	key, meta := Default().Match("manuals/pdf/Bæredygtighedsmanual - Nybyg.pdf")

	if key != KeyNybyg {
		t.Fatalf("key = %q", key)
	}
	if meta.ID != "f7a3e8b2-9c4d-4f1a-8e5c-2d6b9a1c7f3e" {
		t.Errorf("id = %q", meta.ID)
	}
	if meta.Name != "BO-VEST Nybyg" {
		t.Errorf("name = %q", meta.Name)
	}
	if meta.ShortName != "Nybyg" {
		t.Errorf("shortName = %q", meta.ShortName)
	}
	if meta.Group != "bovest" {
		t.Errorf("group = %q", meta.Group)
	}
	if !strings.HasPrefix(meta.URLBase, "https://storage.googleapis.com/") {
		t.Errorf("url base = %q", meta.URLBase)
	}
}

func TestMatchUnknownManual(t *testing.T) {
	key, meta := Default().Match("/tmp/mystery.pdf")

	if key != KeyUnknown {
		t.Fatalf("key = %q", key)
	}
	if meta.ID == "" {
		t.Error("unknown manuals must still get an id")
	}
	if meta.URLBase != "file:///tmp/mystery.pdf" {
		t.Errorf("url base = %q", meta.URLBase)
	}
	if meta.Name != "BO-VEST Unknown" || meta.ShortName != "Unknown" {
		t.Errorf("name = %q, shortName = %q", meta.Name, meta.ShortName)
	}

	// Each unknown manual gets its own id.
	_, again := Default().Match("/tmp/mystery.pdf")
	if again.ID == meta.ID {
		t.Error("unknown manual ids must be unique per match")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	content := `manuals:
  NYBYG:
    name: Nybyg-manualen
    url_base: https://example.org/nybyg.pdf
  PILOT:
    id: 11111111-2222-4333-8444-555555555555
    shortName: Pilot
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	nybyg := m.Manuals[KeyNybyg]
	if nybyg.Name != "Nybyg-manualen" {
		t.Errorf("overridden name = %q", nybyg.Name)
	}
	if nybyg.URLBase != "https://example.org/nybyg.pdf" {
		t.Errorf("overridden url base = %q", nybyg.URLBase)
	}
	if nybyg.ID != "f7a3e8b2-9c4d-4f1a-8e5c-2d6b9a1c7f3e" {
		t.Errorf("unset fields must keep their defaults, id = %q", nybyg.ID)
	}

	pilot, ok := m.Manuals["PILOT"]
	if !ok {
		t.Fatal("added manual missing")
	}
	if pilot.ID != "11111111-2222-4333-8444-555555555555" || pilot.ShortName != "Pilot" {
		t.Errorf("pilot = %+v", pilot)
	}

	if len(m.Manuals) != 4 {
		t.Errorf("got %d manuals, want the 3 defaults plus PILOT", len(m.Manuals))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("manuals: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{KeyNybyg, "bovest-nybyg.json"},
		{KeySimpelSag, "bovest-simpel-sag.json"},
		{KeyRenovering, "bovest-renovering.json"},
		{KeyUnknown, "bovest-unknown.json"},
	}
	for _, tt := range tests {
		if got := OutputFileName(tt.key); got != tt.want {
			t.Errorf("OutputFileName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NYBYG", "Nybyg"},
		{"SIMPEL SAG", "Simpel Sag"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
