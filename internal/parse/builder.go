// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"

	"github.com/meshintel/manual-parser/pkg/types"
)

// themeColors maps theme codes to their primary accent color.
var themeColors = map[string]string{
	"DS": "#d96552",
	"IE": "#81a38b",
	"MA": "#2c484d",
}

const (
	maxCriteriaPerTheme  = 5
	maxTasksPerCriterion = 10

	// defaultDocumentation is the documentation requirement used when no
	// scoring table provides one.
	defaultDocumentation = "Planudsnit / fotodokumentation, og beskrivelser i tekst"

	// defaultItemText is the task-item body used when no scoring table
	// provides a description.
	defaultItemText = "<strong>Beskrivelse</strong>\n(Extracted description)"
)

// defaultOptionTexts are the three scoring levels used when a task's page
// has no recognizable table.
var defaultOptionTexts = []string{
	"Der er etableret 1-2 typer af rumlige situationer...",
	"I tillæg hertil er der attraktive og inviterende stueetager...",
	"Derudover kan der identificeres mindst 3 invitationer...",
}

// BuildTheme assembles one theme from its detected page window. The same
// task list is attached under every detected criterion because the manuals
// do not delimit tasks per criterion reliably; the caller sets SortOrder.
// pageTables holds per-page scoring-table enrichment keyed by 1-based page
// number, and may be nil.
func BuildTheme(chunk, themeTitle, baseURL string, startPage int, pageTables map[int]TaskDetails) types.Theme {
	themeCode := CodeFromTitle(themeTitle)
	primary, ok := themeColors[themeCode]
	if !ok {
		primary = "#000000"
	}

	theme := types.Theme{
		Type:          "theme",
		Code:          themeCode,
		Title:         themeTitle,
		LongFormTitle: themeTitle,
		Style: types.Style{
			PrimaryColor:   primary,
			SecondaryColor: LightenColor(primary, 0.1),
		},
		SortOrder: 1,
		Options: types.ThemeOptions{
			HideCodeInReport:     true,
			HideFromBreadcrumbs:  true,
			HideFromDocumentTree: true,
		},
		Items: []types.Criterion{},
	}

	criteria := DetectCriteria(chunk)
	if len(criteria) > maxCriteriaPerTheme {
		criteria = criteria[:maxCriteriaPerTheme]
	}

	tasks := ExtractTasks(chunk)
	if len(tasks) > maxTasksPerCriterion {
		tasks = tasks[:maxTasksPerCriterion]
	}

	for cIdx, criterion := range criteria {
		// A window without task matches still gets one sample task per
		// criterion, titled after that criterion.
		taskList := tasks
		if len(taskList) == 0 {
			taskList = []TaskMatch{{Code: "01", Title: criterion + " - Eksempelopgave"}}
		}

		critCode := fmt.Sprintf("%s%d", themeCode, cIdx+1)
		critObj := types.Criterion{
			Type:          "criterion",
			Code:          critCode,
			Title:         criterion,
			LongFormTitle: criterion,
			SortOrder:     cIdx + 1,
			Options: types.CriterionOptions{
				HideCodeInReport:              true,
				HideFromBreadcrumbs:           true,
				HideFromDocumentTree:          true,
				CriteriaTreeElementTextFormat: ":title:",
			},
			Items: []types.TaskGroup{},
		}

		group := types.TaskGroup{
			Type:          "task-group",
			Code:          critCode + ".1",
			Title:         criterion,
			LongFormTitle: criterion,
			SortOrder:     1,
			Items:         []types.Task{},
		}

		for tIdx, tm := range taskList {
			pageNumber := startPage + tIdx
			var details *TaskDetails
			if td, ok := pageTables[pageNumber]; ok {
				details = &td
			}
			group.Items = append(group.Items, buildTask(tm, tIdx, pageNumber, baseURL, details))
		}

		critObj.Items = append(critObj.Items, group)
		theme.Items = append(theme.Items, critObj)
	}

	return theme
}

// buildTask assembles one task with its documentation entries and its
// single-choice task item. Table details, when present, replace the
// hardcoded option texts and documentation requirement.
func buildTask(tm TaskMatch, sortIdx, pageNumber int, baseURL string, details *TaskDetails) types.Task {
	documentation := defaultDocumentation
	optionTexts := defaultOptionTexts
	itemText := defaultItemText
	if details != nil {
		if details.Documentation != "" {
			documentation = details.Documentation
		}
		if len(details.Options) > 0 {
			optionTexts = details.Options
			itemText = "<strong>Beskrivelse</strong>\n" + details.Options[0]
		}
	}

	options := make([]types.SelectOption, len(optionTexts))
	for i, text := range optionTexts {
		options[i] = types.SelectOption{
			ID:    fmt.Sprintf("option.%d", i),
			Text:  text,
			Value: i + 1,
		}
	}

	return types.Task{
		Type:                     "task",
		ValueCalculationStrategy: "count",
		Code:                     tm.Code,
		Title:                    tm.Title,
		LongFormTitle:            tm.Title,
		SortOrder:                sortIdx + 1,
		Options: types.TaskOptions{
			BreadcrumbTextFormat:             ":code: :title:",
			DocumentTreeFolderTextFormat:     ":code: :title:",
			ShowCodeAsIndicatorTaskViewTitle: false,
			CriteriaTreeElementTextFormat:    ":code: :title:",
		},
		Documentation: []types.Documentation{
			{
				Type:  "pdf",
				Label: "Definition",
				Text:  fmt.Sprintf("Manual (side %d)", pageNumber),
				URL:   fmt.Sprintf("%s?page=%d", baseURL, pageNumber),
			},
			{
				Type:  "text",
				Label: "Dokumentationskrav",
				Text:  documentation,
			},
		},
		Items: []types.TaskItem{
			{
				Type: "task-item",
				Code: tm.Code + ".1",
				Definition: types.TaskItemDefinition{
					Type:    "select-single",
					Options: options,
				},
				Options: types.TaskItemOptions{ExcludeFromTargets: false},
				Text:    itemText,
			},
		},
	}
}

// LightenColor moves each RGB component of a #rrggbb color 10 percent (or
// the given fraction) toward white. Malformed input comes back unchanged.
func LightenColor(hexColor string, amount float64) string {
	if len(hexColor) != 7 || hexColor[0] != '#' {
		return hexColor
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hexColor, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hexColor
	}
	r += int(float64(255-r) * amount)
	g += int(float64(255-g) * amount)
	b += int(float64(255-b) * amount)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
