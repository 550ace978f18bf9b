package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/abcu/advisor/internal/locate"
	"github.com/abcu/advisor/pkg/catalog"
	"github.com/abcu/advisor/pkg/errors"
)

// resolveCatalogPath picks the course file to load: an explicit
// positional argument wins, then the --file flag / catalog.file config
// key. The name is then resolved against the working directory and its
// parents so the tool works from build subdirectories.
func resolveCatalogPath(args []string) (string, error) {
	name := viper.GetString("catalog.file")
	if len(args) > 0 && args[0] != "" {
		name = args[0]
	}
	return locate.File(name)
}

// loadCatalog resolves the course file and loads a fresh catalog from
// it. Each command invocation owns its own directory instance; nothing
// is shared between runs except the file path. A failed load surfaces
// its warnings on stderr and returns a LoadError.
func loadCatalog(args []string) (*catalog.Catalog, *catalog.LoadResult, error) {
	path, err := resolveCatalogPath(args)
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.New()
	result := cat.Load(path)
	if !result.OK {
		for _, warning := range result.Warnings {
			fmt.Fprintln(os.Stderr, warning)
		}
		return nil, result, &errors.LoadError{Path: result.Path, Warnings: result.Warnings}
	}

	return cat, result, nil
}

// sortedCourses returns the loaded courses in catalog ID order.
func sortedCourses(cat *catalog.Catalog) []*catalog.Course {
	ids := cat.IDs()
	courses := make([]*catalog.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := cat.Get(id); ok {
			courses = append(courses, course)
		}
	}
	return courses
}
