// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the bovest manual document model and the
// configuration structs shared across the tool.
package types

// Manual is the root document: one sustainability manual with its
// versioned criteria tree.
type Manual struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ShortName   string    `json:"shortName"`
	Group       string    `json:"group"`
	Description string    `json:"description"`
	Versions    []Version `json:"versions"`
}

// Version is one dated revision of the manual's theme tree.
type Version struct {
	Version string  `json:"version"`
	Date    string  `json:"date"`
	Themes  []Theme `json:"themes"`
}

// Theme is a top-level section of the manual (Det Sociale, Indeklima,
// Materialer). Its items are criteria.
type Theme struct {
	Type          string       `json:"type"`
	Code          string       `json:"code"`
	Title         string       `json:"title"`
	LongFormTitle string       `json:"longFormTitle"`
	Style         Style        `json:"style"`
	SortOrder     int          `json:"sortOrder"`
	Options       ThemeOptions `json:"options"`
	Items         []Criterion  `json:"items"`
}

// Style carries the theme's accent colors as #rrggbb strings.
type Style struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// ThemeOptions controls how the theme renders in the criteria tooling.
type ThemeOptions struct {
	HideCodeInReport     bool `json:"hideCodeInReport"`
	HideFromBreadcrumbs  bool `json:"hideFromBreadcrumbs"`
	HideFromDocumentTree bool `json:"hideFromDocumentTree"`
}

// Criterion is a sub-section under a theme. Its items are task groups.
type Criterion struct {
	Type          string           `json:"type"`
	Code          string           `json:"code"`
	Title         string           `json:"title"`
	LongFormTitle string           `json:"longFormTitle"`
	SortOrder     int              `json:"sortOrder"`
	Options       CriterionOptions `json:"options"`
	Items         []TaskGroup      `json:"items"`
}

// CriterionOptions controls how the criterion renders.
type CriterionOptions struct {
	HideCodeInReport              bool   `json:"hideCodeInReport"`
	HideFromBreadcrumbs           bool   `json:"hideFromBreadcrumbs"`
	HideFromDocumentTree          bool   `json:"hideFromDocumentTree"`
	CriteriaTreeElementTextFormat string `json:"criteriaTreeElementTextFormat"`
}

// TaskGroup bundles a criterion's tasks. Its items are tasks.
type TaskGroup struct {
	Type          string `json:"type"`
	Code          string `json:"code"`
	Title         string `json:"title"`
	LongFormTitle string `json:"longFormTitle"`
	SortOrder     int    `json:"sortOrder"`
	Items         []Task `json:"items"`
}

// Task is one numbered requirement from the manual. Its items are the
// selectable task items.
type Task struct {
	Type                     string          `json:"type"`
	ValueCalculationStrategy string          `json:"valueCalculationStrategy"`
	Code                     string          `json:"code"`
	Title                    string          `json:"title"`
	LongFormTitle            string          `json:"longFormTitle"`
	SortOrder                int             `json:"sortOrder"`
	Options                  TaskOptions     `json:"options"`
	Documentation            []Documentation `json:"documentation"`
	Items                    []TaskItem      `json:"items"`
}

// TaskOptions controls how the task renders.
type TaskOptions struct {
	BreadcrumbTextFormat             string `json:"breadcrumbTextFormat"`
	DocumentTreeFolderTextFormat     string `json:"documentTreeFolderTextFormat"`
	ShowCodeAsIndicatorTaskViewTitle bool   `json:"showCodeAsIndicatorTaskViewTitle"`
	CriteriaTreeElementTextFormat    string `json:"criteriaTreeElementTextFormat"`
}

// Documentation is one documentation entry attached to a task, either a
// link into the source PDF or a plain-text requirement.
type Documentation struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// TaskItem is the single-choice scoring element of a task.
type TaskItem struct {
	Type       string             `json:"type"`
	Code       string             `json:"code"`
	Definition TaskItemDefinition `json:"definition"`
	Options    TaskItemOptions    `json:"options"`
	Text       string             `json:"text"`
}

// TaskItemDefinition describes the select-single control and its options.
type TaskItemDefinition struct {
	Type    string         `json:"type"`
	Options []SelectOption `json:"options"`
}

// SelectOption is one scoring level of a task item.
type SelectOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TaskItemOptions controls task-item scoring behavior.
type TaskItemOptions struct {
	ExcludeFromTargets bool `json:"excludeFromTargets"`
}
