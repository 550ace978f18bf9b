package catalog

// LoadResult summarizes one load attempt so callers can report the
// outcome. Warnings appear in the order they were generated during the
// line-by-line pass; MissingPrerequisites is deduplicated and sorted.
// The result is a transient report and is not part of catalog state.
type LoadResult struct {
	// OK is true when at least one valid course was loaded and the
	// catalog state was replaced.
	OK bool `json:"ok" yaml:"ok"`

	// Courses is the number of courses committed by this load.
	Courses int `json:"courses" yaml:"courses"`

	// Warnings holds one human-readable message per recovered problem
	// (skipped line, dropped prerequisite, replaced entry, ...).
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// MissingPrerequisites lists prerequisites that reference courses
	// absent from the loaded catalog, each formatted as
	// "<missing-id> (referenced by <course-id>)".
	MissingPrerequisites []string `json:"missing_prerequisites,omitempty" yaml:"missing_prerequisites,omitempty"`

	// Path is the absolute path that was actually read.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
