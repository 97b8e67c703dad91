package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doccatalog/internal/model"
)

func TestSeedDocuments(t *testing.T) {
	docs := SeedDocuments()
	assert.Len(t, docs, 12)

	perCategory := map[model.Category]int{}
	for _, d := range docs {
		assert.NoError(t, d.Validate(), d.Title)
		assert.Empty(t, d.ID)
		perCategory[d.Category]++
	}
	for _, c := range model.Categories() {
		assert.Equal(t, 3, perCategory[c], "category %s", c)
	}
}

func TestSeedDocuments_ReturnsFreshCopy(t *testing.T) {
	a := SeedDocuments()
	a[0].Title = "changed"
	assert.Equal(t, "Engineering Standards", SeedDocuments()[0].Title)
}
