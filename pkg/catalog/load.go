package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abcu/advisor/pkg/logging"
)

// Load reads the comma-delimited course file at path, validates every
// line, and rebuilds the directory from scratch. Malformed lines and
// fields are skipped with a warning, never fatal: only an unreadable
// file or a file yielding zero valid courses produces a failed result.
// On failure the previously committed state is left untouched.
//
// Data-quality problems are reported through the result, not as Go
// errors; Load itself never fails.
func (c *Catalog) Load(path string) *LoadResult {
	result := &LoadResult{}
	if path == "" {
		result.Warnings = append(result.Warnings, "File name is empty.")
		return result
	}

	if abs, err := filepath.Abs(path); err == nil {
		result.Path = abs
	} else {
		result.Path = path
	}

	file, err := os.Open(path)
	if err != nil {
		result.Warnings = append(result.Warnings, "Unable to open file: "+result.Path)
		return result
	}
	defer file.Close()

	logging.Debug().Str("path", result.Path).Msg("loading course catalog")

	// Accumulate into a fresh map so the live directory is swapped in
	// one assignment only after the file yields at least one course.
	loaded := make(map[string]*Course)
	var warnings []string

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.Trim(scanner.Text(), cutset)
		if line == "" {
			continue
		}

		course, lineWarnings := parseLine(line, lineNumber)
		warnings = append(warnings, lineWarnings...)
		if course == nil {
			continue
		}

		if _, exists := loaded[course.ID]; exists {
			warnings = append(warnings, "Replacing existing course entry for "+course.ID+".")
		}
		loaded[course.ID] = course
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, "Unable to read file: "+result.Path)
	}

	result.Warnings = warnings
	if len(loaded) == 0 {
		return result
	}

	result.OK = true
	result.Courses = len(loaded)
	result.MissingPrerequisites = missingPrerequisites(loaded)

	sortedIDs := make([]string, 0, len(loaded))
	for id := range loaded {
		sortedIDs = append(sortedIDs, id)
	}
	sort.Strings(sortedIDs)

	c.courses = loaded
	c.sortedIDs = sortedIDs

	logging.Debug().
		Int("courses", result.Courses).
		Int("warnings", len(result.Warnings)).
		Int("missing_prerequisites", len(result.MissingPrerequisites)).
		Msg("course catalog committed")

	return result
}

// parseLine turns one non-blank line into a validated course, or nil
// with the warnings explaining why it was skipped. Fields beyond the
// ID and title are prerequisite candidates; empty ones are tolerated
// silently (trailing commas), invalid and duplicate ones are dropped
// with a warning each.
func parseLine(line string, lineNumber int) (*Course, []string) {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.Trim(field, cutset)
	}

	if len(fields) < 2 {
		return nil, []string{fmt.Sprintf("Skipping line %d: expected course ID and name.", lineNumber)}
	}

	id := strings.ToUpper(fields[0])
	if !ValidID(id) {
		return nil, []string{fmt.Sprintf("Skipping line %d: invalid course ID '%s'.", lineNumber, fields[0])}
	}

	course := &Course{ID: id, Title: fields[1]}

	var warnings []string
	seen := make(map[string]struct{})
	for _, field := range fields[2:] {
		if field == "" {
			continue
		}
		prereq := strings.ToUpper(field)
		if !ValidID(prereq) {
			warnings = append(warnings, "Skipping invalid prerequisite '"+field+"' for course "+course.ID+".")
			continue
		}
		if _, dup := seen[prereq]; dup {
			warnings = append(warnings, "Duplicate prerequisite '"+prereq+"' ignored for course "+course.ID+".")
			continue
		}
		seen[prereq] = struct{}{}
		course.Prerequisites = append(course.Prerequisites, prereq)
	}

	return course, warnings
}

// missingPrerequisites cross-references every prerequisite against the
// fully loaded map and returns the sorted, deduplicated descriptions of
// the ones that reference courses missing from it. This needs the
// complete map: a prerequisite may name a course defined later in the
// file.
func missingPrerequisites(loaded map[string]*Course) []string {
	missingSet := make(map[string]struct{})
	for id, course := range loaded {
		for _, prereq := range course.Prerequisites {
			if _, ok := loaded[prereq]; !ok {
				missingSet[prereq+" (referenced by "+id+")"] = struct{}{}
			}
		}
	}
	if len(missingSet) == 0 {
		return nil
	}

	missing := make([]string, 0, len(missingSet))
	for entry := range missingSet {
		missing = append(missing, entry)
	}
	sort.Strings(missing)
	return missing
}
