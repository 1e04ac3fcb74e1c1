package criteria

import (
	"testing"

	domainCriteria "supermercado/src/shared/domain/criteria"

	"github.com/stretchr/testify/assert"
)

func TestToSelectSQL_NoCriteria(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	query, params := converter.ToSelectSQL("SELECT id, name FROM products", domainCriteria.Criteria{})

	assert.Equal(t, "SELECT id, name FROM products", query)
	assert.Empty(t, params)
}

func TestToSelectSQL_FiltersOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	limit := 50
	offset := 0
	crit := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("name", domainCriteria.OpLike, "Pan"),
			domainCriteria.NewFilter("category", domainCriteria.OpEqual, "Panadería"),
		),
		domainCriteria.NewOrder("name", domainCriteria.ASC),
		&limit,
		&offset,
	)

	query, params := converter.ToSelectSQL("SELECT id, name FROM products", crit)

	assert.Equal(t,
		"SELECT id, name FROM products WHERE name LIKE $1 AND category = $2 ORDER BY name ASC LIMIT 50 OFFSET 0",
		query,
	)
	assert.Equal(t, []interface{}{"%Pan%", "Panadería"}, params)
}

func TestToSelectSQL_LikeKeepsExplicitWildcards(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("name", domainCriteria.OpLike, "Pan%"),
		),
		domainCriteria.Order{},
		nil,
		nil,
	)

	query, params := converter.ToSelectSQL("SELECT id FROM products", crit)

	assert.Equal(t, "SELECT id FROM products WHERE name LIKE $1", query)
	assert.Equal(t, []interface{}{"Pan%"}, params)
}

func TestToSelectSQL_ComparisonOperators(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("price", domainCriteria.OpGreaterThanOrEqual, 10),
			domainCriteria.NewFilter("stock", domainCriteria.OpLessThan, 5),
		),
		domainCriteria.Order{},
		nil,
		nil,
	)

	query, params := converter.ToSelectSQL("SELECT id FROM products", crit)

	assert.Equal(t, "SELECT id FROM products WHERE price >= $1 AND stock < $2", query)
	assert.Equal(t, []interface{}{10, 5}, params)
}
