// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/manual-parser/internal/manifest"
	"github.com/meshintel/manual-parser/pkg/types"
)

func fixedNow() time.Time {
	return time.Date(2026, 2, 14, 10, 30, 0, 0, time.FixedZone("CET", 3600))
}

func testMeta() manifest.ManualMeta {
	return manifest.ManualMeta{
		ID:        "a1b2c3d4-0000-4000-8000-000000000001",
		Name:      "BO-VEST Nybyg",
		ShortName: "Nybyg",
		Group:     "bovest",
		URLBase:   "https://example.com/nybyg.pdf",
	}
}

// testTheme builds one complete theme branch down to a task item.
func testTheme() types.Theme {
	return types.Theme{
		Type:          "theme",
		Code:          "DS",
		Title:         "Det Sociale",
		LongFormTitle: "Det Sociale",
		Style:         types.Style{PrimaryColor: "#d96552", SecondaryColor: "#dc7463"},
		SortOrder:     1,
		Options:       types.ThemeOptions{HideCodeInReport: true, HideFromBreadcrumbs: true, HideFromDocumentTree: true},
		Items: []types.Criterion{
			{
				Type:          "criterion",
				Code:          "DS1",
				Title:         "Livet Mellem Naboer",
				LongFormTitle: "Livet Mellem Naboer",
				SortOrder:     1,
				Options: types.CriterionOptions{
					HideCodeInReport:              true,
					CriteriaTreeElementTextFormat: ":title:",
				},
				Items: []types.TaskGroup{
					{
						Type:          "task-group",
						Code:          "DS1.1",
						Title:         "Opgaver",
						LongFormTitle: "Opgaver",
						SortOrder:     1,
						Items: []types.Task{
							{
								Type:                     "task",
								ValueCalculationStrategy: "count",
								Code:                     "01",
								Title:                    "Fælles gård",
								LongFormTitle:            "Fælles gård",
								SortOrder:                1,
								Options: types.TaskOptions{
									BreadcrumbTextFormat:          ":code: :title:",
									CriteriaTreeElementTextFormat: ":code: :title:",
								},
								Documentation: []types.Documentation{
									{
										Type:  "pdf",
										Label: "Definition",
										Text:  "Manual (side 3)",
										URL:   "https://example.com/nybyg.pdf?page=3",
									},
								},
								Items: []types.TaskItem{
									{
										Type: "task-item",
										Code: "01.1",
										Definition: types.TaskItemDefinition{
											Type: "select-single",
											Options: []types.SelectOption{
												{ID: "a1b2c3d4-0000-4000-8000-0000000000aa", Text: "Opfyldt", Value: 1},
											},
										},
										Options: types.TaskItemOptions{},
										Text:    "<strong>Beskrivelse</strong>\n(Extracted description)",
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestBuildManual(t *testing.T) {
	restore := now
	now = fixedNow
	defer func() { now = restore }()

	m := BuildManual(testMeta(), "En beskrivelse.", []types.Theme{testTheme()})

	assert.Equal(t, "a1b2c3d4-0000-4000-8000-000000000001", m.ID)
	assert.Equal(t, "BO-VEST Nybyg", m.Name)
	assert.Equal(t, "Nybyg", m.ShortName)
	assert.Equal(t, "bovest", m.Group)
	assert.Equal(t, "En beskrivelse.", m.Description)

	require.Len(t, m.Versions, 1)
	v := m.Versions[0]
	assert.Equal(t, "1.0.0", v.Version)
	assert.Equal(t, "2026-02-14T09:30:00Z", v.Date)
	require.Len(t, v.Themes, 1)
	assert.Equal(t, "DS", v.Themes[0].Code)
}

func TestBuildManualFallbacks(t *testing.T) {
	m := BuildManual(testMeta(), "", nil)

	assert.Equal(t, "Nybyg", m.Description, "empty description falls back to the short name")
	require.Len(t, m.Versions, 1)
	assert.NotNil(t, m.Versions[0].Themes, "themes must encode as [], not null")
	assert.Empty(t, m.Versions[0].Themes)
}

func TestMarshalKeepsMarkupLiteral(t *testing.T) {
	m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})

	data, err := Marshal(m)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "<strong>Beskrivelse</strong>")
	assert.NotContains(t, s, `<`, "HTML escaping must stay off")
	assert.Contains(t, s, "Fælles gård", "non-ASCII text stays unescaped")
}

func TestMarshalRoundTrip(t *testing.T) {
	m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})

	first, err := Marshal(m)
	require.NoError(t, err)

	var decoded types.Manual
	require.NoError(t, json.Unmarshal(first, &decoded))

	second, err := Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestValidate(t *testing.T) {
	m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})
	data, err := Marshal(m)
	require.NoError(t, err)
	require.NoError(t, Validate(data))
}

func TestValidateRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *types.Manual)
		rawJSON string
	}{
		{
			name:    "not json",
			rawJSON: "{",
		},
		{
			name:   "task code not two digits",
			mutate: func(m *types.Manual) { m.Versions[0].Themes[0].Items[0].Items[0].Items[0].Code = "1" },
		},
		{
			name:   "bad theme color",
			mutate: func(m *types.Manual) { m.Versions[0].Themes[0].Style.PrimaryColor = "red" },
		},
		{
			name:   "no versions",
			mutate: func(m *types.Manual) { m.Versions = nil },
		},
		{
			name: "select options empty",
			mutate: func(m *types.Manual) {
				m.Versions[0].Themes[0].Items[0].Items[0].Items[0].Items[0].Definition.Options = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.rawJSON)
			if tt.mutate != nil {
				m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})
				tt.mutate(m)
				var err error
				data, err = Marshal(m)
				require.NoError(t, err)
			}
			assert.Error(t, Validate(data))
		})
	}
}

func TestWriteManual(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "build", "bovest-nybyg.json")

	m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})
	require.NoError(t, WriteManual(m, path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n"))

	var decoded types.Manual
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m.Name, decoded.Name)
}

func TestWriteManualValidationFailure(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bad.json")

	m := BuildManual(testMeta(), "Beskrivelse.", []types.Theme{testTheme()})
	m.Versions = nil

	err := WriteManual(m, path, true)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid manuals must not be written")
}
