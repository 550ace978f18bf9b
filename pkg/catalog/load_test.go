package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcu/advisor/pkg/catalog"
)

// writeCourseFile drops content into a temp course file and returns its path.
func writeCourseFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBasic(t *testing.T) {
	path := writeCourseFile(t, "CSCI200, Intro to CS, CSCI101\nCSCI101, Programming Fundamentals\n")

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Equal(t, 2, result.Courses)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.MissingPrerequisites)
	assert.True(t, filepath.IsAbs(result.Path))

	course, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Equal(t, "Intro to CS", course.Title)
	assert.Equal(t, []string{"CSCI101"}, course.Prerequisites)

	assert.Equal(t, []string{"CSCI101", "CSCI200"}, cat.IDs())
}

func TestLoadNormalizesIdentifiers(t *testing.T) {
	path := writeCourseFile(t, "csci200,Intro,MATH999\n")

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Equal(t, 1, result.Courses)
	assert.Equal(t, []string{"MATH999 (referenced by CSCI200)"}, result.MissingPrerequisites)

	course, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Equal(t, "CSCI200", course.ID)
	assert.Equal(t, []string{"MATH999"}, course.Prerequisites)
}

func TestLoadInvalidIDFailsWholeFile(t *testing.T) {
	path := writeCourseFile(t, "200CSCI,Bad ID\n")

	cat := catalog.New()
	result := cat.Load(path)

	assert.False(t, result.OK)
	assert.Equal(t, 0, result.Courses)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Skipping line 1: invalid course ID '200CSCI'.", result.Warnings[0])
	assert.Empty(t, cat.IDs())
}

func TestLoadSelfPrerequisite(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,Intro,CSCI200\n")

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Empty(t, result.MissingPrerequisites)

	course, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Equal(t, []string{"CSCI200"}, course.Prerequisites)
}

func TestLoadDuplicateCourseLastWins(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,First Title,CSCI101\nCSCI101,Fundamentals\nCSCI200,Second Title\n")

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Equal(t, 2, result.Courses)
	assert.Equal(t, []string{"Replacing existing course entry for CSCI200."}, result.Warnings)

	course, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Equal(t, "Second Title", course.Title)
	assert.Empty(t, course.Prerequisites)
}

func TestLoadEmptyFileFails(t *testing.T) {
	for name, content := range map[string]string{
		"empty":       "",
		"blank lines": "\n   \n\t\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeCourseFile(t, content)

			result := catalog.New().Load(path)
			assert.False(t, result.OK)
			assert.Equal(t, 0, result.Courses)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestLoadWarningMessages(t *testing.T) {
	content := "CSCI200\n" + // too few fields
		"CSCI300,Algorithms,BAD-ID,CSCI200,CSCI200\n" + // invalid then duplicate prereq
		"CSCI200,Intro\n"
	path := writeCourseFile(t, content)

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Equal(t, 2, result.Courses)
	assert.Equal(t, []string{
		"Skipping line 1: expected course ID and name.",
		"Skipping invalid prerequisite 'BAD-ID' for course CSCI300.",
		"Duplicate prerequisite 'CSCI200' ignored for course CSCI300.",
	}, result.Warnings)

	course, ok := cat.Get("CSCI300")
	require.True(t, ok)
	assert.Equal(t, []string{"CSCI200"}, course.Prerequisites)
}

func TestLoadTrailingCommasTolerated(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,Intro,,\nCSCI300,Algorithms,CSCI200,\n")

	cat := catalog.New()
	result := cat.Load(path)

	require.True(t, result.OK)
	assert.Empty(t, result.Warnings)

	intro, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Empty(t, intro.Prerequisites)

	algorithms, ok := cat.Get("CSCI300")
	require.True(t, ok)
	assert.Equal(t, []string{"CSCI200"}, algorithms.Prerequisites)
}

func TestLoadMissingPrerequisitesSortedAndDeduplicated(t *testing.T) {
	content := "CSCI300,Algorithms,MATH999,ZOOL100\n" +
		"CSCI400,Capstone,MATH999\n"
	path := writeCourseFile(t, content)

	result := catalog.New().Load(path)
	require.True(t, result.OK)
	assert.Equal(t, []string{
		"MATH999 (referenced by CSCI300)",
		"MATH999 (referenced by CSCI400)",
		"ZOOL100 (referenced by CSCI300)",
	}, result.MissingPrerequisites)
}

func TestLoadDanglingReferenceResolvedByLaterLine(t *testing.T) {
	// B200 is referenced before it is defined; the cross-reference pass
	// runs over the complete map, so nothing is reported missing.
	path := writeCourseFile(t, "A100,Alpha,B200\nB200,Beta\n")

	result := catalog.New().Load(path)
	require.True(t, result.OK)
	assert.Empty(t, result.MissingPrerequisites)
}

func TestLoadUnreadableFile(t *testing.T) {
	cat := catalog.New()
	result := cat.Load(filepath.Join(t.TempDir(), "nope.csv"))

	assert.False(t, result.OK)
	assert.Equal(t, 0, result.Courses)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Unable to open file: ")
}

func TestLoadEmptyPath(t *testing.T) {
	result := catalog.New().Load("")

	assert.False(t, result.OK)
	assert.Equal(t, []string{"File name is empty."}, result.Warnings)
	assert.Empty(t, result.Path)
}

func TestLoadIdempotent(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,Intro,CSCI101\nCSCI101,Fundamentals\n")

	cat := catalog.New()
	first := cat.Load(path)
	firstIDs := cat.IDs()

	second := cat.Load(path)
	assert.Equal(t, first, second)
	assert.Equal(t, firstIDs, cat.IDs())
}

func TestLoadFailedLoadPreservesState(t *testing.T) {
	good := writeCourseFile(t, "CSCI200,Intro\n")
	bad := writeCourseFile(t, "200CSCI,Bad\n")

	cat := catalog.New()
	require.True(t, cat.Load(good).OK)

	result := cat.Load(bad)
	assert.False(t, result.OK)

	// Committed state is untouched by the failed load.
	course, ok := cat.Get("CSCI200")
	require.True(t, ok)
	assert.Equal(t, "Intro", course.Title)
	assert.Equal(t, []string{"CSCI200"}, cat.IDs())
	assert.Equal(t, 1, cat.Len())
}

func TestIDsReturnsIndependentCopy(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,Intro\nCSCI101,Fundamentals\n")

	cat := catalog.New()
	require.True(t, cat.Load(path).OK)

	ids := cat.IDs()
	ids[0] = "MUTATED"
	assert.Equal(t, []string{"CSCI101", "CSCI200"}, cat.IDs())
}

func TestGetRoundTrip(t *testing.T) {
	path := writeCourseFile(t, "CSCI200,Intro\ncsci101,Fundamentals\nMATH201,Discrete Math\n")

	cat := catalog.New()
	require.True(t, cat.Load(path).OK)

	for _, id := range cat.IDs() {
		course, ok := cat.Get(id)
		require.True(t, ok, "course %s reachable via Get", id)
		assert.Equal(t, id, course.ID)
	}
}
