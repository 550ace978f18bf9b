// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/abcu/advisor/pkg/catalog"
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers []string
	Rows    [][]string
}

// CoursesToTableData converts courses to table format, in the order
// given. The wide variant adds a prerequisite count column.
func CoursesToTableData(courses []*catalog.Course, wide bool) Data {
	headers := []string{"ID", "Title", "Prerequisites"}
	if wide {
		headers = append(headers, "Prereq Count")
	}

	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		prereqs := strings.Join(course.Prerequisites, ", ")
		if prereqs == "" {
			prereqs = "-"
		}

		row := []string{course.ID, course.Title, prereqs}
		if wide {
			row = append(row, strconv.Itoa(len(course.Prerequisites)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// CourseDetailsToTableData builds the prerequisite detail rows for one
// course, resolving each prerequisite's title against the directory.
// Prerequisites that reference courses absent from the directory are
// called out explicitly.
func CourseDetailsToTableData(course *catalog.Course, dir *catalog.Catalog) Data {
	rows := make([][]string, 0, len(course.Prerequisites))
	for _, prereqID := range course.Prerequisites {
		title := "(missing from catalog)"
		if prereq, ok := dir.Get(prereqID); ok {
			title = prereq.Title
		}
		rows = append(rows, []string{prereqID, title})
	}

	return Data{
		Headers: []string{"Prerequisite", "Title"},
		Rows:    rows,
	}
}

// LoadWarningsToTableData converts load warnings to a one-column table.
func LoadWarningsToTableData(warnings []string) Data {
	rows := make([][]string, 0, len(warnings))
	for _, warning := range warnings {
		rows = append(rows, []string{warning})
	}
	return Data{Headers: []string{"Warning"}, Rows: rows}
}
