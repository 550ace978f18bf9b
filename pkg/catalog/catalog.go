// Package catalog maintains an in-memory directory of academic courses
// loaded from a comma-delimited text file. Load parses and validates
// the whole file, cross-references prerequisites against the loaded
// set, and atomically replaces the directory only when at least one
// valid course was found; Get and IDs query the committed state.
//
// A Catalog has no internal locking. Callers that share one across
// goroutines must serialize Load against the read operations.
package catalog

// Catalog is the committed, queryable course directory: a map keyed by
// normalized course ID plus a cached lexicographically sorted ID list.
// Both are replaced together by a successful Load and never mutated
// in place.
type Catalog struct {
	courses   map[string]*Course
	sortedIDs []string
}

// New returns an empty catalog. Populate it with Load.
func New() *Catalog {
	return &Catalog{courses: make(map[string]*Course)}
}

// Get returns the course stored under id and whether it exists. The
// lookup is exact-match against the normalized (uppercase) key; use
// NormalizeLookupID to clean up user input first.
func (c *Catalog) Get(id string) (*Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// IDs returns a copy of the sorted course ID list. Callers may retain
// or mutate it independently of subsequent loads.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.sortedIDs))
	copy(ids, c.sortedIDs)
	return ids
}

// Len returns the number of courses currently committed.
func (c *Catalog) Len() int {
	return len(c.courses)
}
