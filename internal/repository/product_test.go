package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFindProducts(t *testing.T) {
	name := "Widget"
	price := int32(10)

	tests := []struct {
		name          string
		arg           FindProductsParams
		expectedQuery string
		expectedArgs  []interface{}
	}{
		{
			name:          "no filters",
			arg:           FindProductsParams{},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products",
			expectedArgs:  []interface{}{},
		},
		{
			name: "name filter only",
			arg:  FindProductsParams{Name: &name},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products" +
				" WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)",
			expectedArgs: []interface{}{"Widget"},
		},
		{
			name: "price filter only",
			arg:  FindProductsParams{Price: &price},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products" +
				" WHERE price = $1",
			expectedArgs: []interface{}{int32(10)},
		},
		{
			name: "name and price filters",
			arg:  FindProductsParams{Name: &name, Price: &price},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products" +
				" WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)" +
				" AND price = $2",
			expectedArgs: []interface{}{"Widget", int32(10)},
		},
		{
			name:          "order by name",
			arg:           FindProductsParams{OrderBy: "name"},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products ORDER BY name",
			expectedArgs:  []interface{}{},
		},
		{
			name:          "order by price descending",
			arg:           FindProductsParams{OrderBy: "price", Desc: true},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products ORDER BY price DESC",
			expectedArgs:  []interface{}{},
		},
		{
			name:          "order by is case insensitive",
			arg:           FindProductsParams{OrderBy: "PRICE"},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products ORDER BY price",
			expectedArgs:  []interface{}{},
		},
		{
			name: "filters and ordering combined",
			arg:  FindProductsParams{Name: &name, OrderBy: "price", Desc: true},
			expectedQuery: "SELECT id, name, brand, manufacturer, price FROM products" +
				" WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)" +
				" ORDER BY price DESC",
			expectedArgs: []interface{}{"Widget"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, args := buildFindProducts(test.arg)
			assert.Equal(t, test.expectedQuery, query)
			assert.Equal(t, test.expectedArgs, args)
		})
	}
}
