package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/domain"
)

func TestSectionsGroupsConsecutiveCategories(t *testing.T) {
	rs := domain.ResultSet{Items: []domain.ResultItem{
		{ID: "p1", Title: "Red Shoes", Category: domain.CategoryProduct},
		{ID: "p2", Title: "Redwood Candle", Category: domain.CategoryProduct},
		{ID: "a1", Title: "Caring for Red Leather", Category: domain.CategoryArticle},
	}}

	got := Sections(rs)
	require.Len(t, got, 2)
	assert.Equal(t, "Products", got[0].Label)
	assert.Equal(t, 0, got[0].Start)
	assert.Len(t, got[0].Items, 2)
	assert.Equal(t, "Articles", got[1].Label)
	assert.Equal(t, 2, got[1].Start)
}

func TestSectionsEmpty(t *testing.T) {
	assert.Empty(t, Sections(domain.ResultSet{}))
}
