package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abcu/advisor/pkg/catalog"
)

func TestNewCatalogIsEmpty(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.IDs())

	course, ok := cat.Get("CSCI200")
	assert.False(t, ok)
	assert.Nil(t, course)
}
