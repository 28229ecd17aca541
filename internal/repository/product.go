package repository

import (
	"context"
	"fmt"
	"strings"
)

const insertProduct = `
INSERT INTO products (name, brand, manufacturer, price)
VALUES ($1, $2, $3, $4)
RETURNING id, name, brand, manufacturer, price
`

type InsertProductParams struct {
	Name         string
	Brand        string
	Manufacturer string
	Price        int32
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(c, insertProduct, arg.Name, arg.Brand, arg.Manufacturer, arg.Price)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Brand, &i.Manufacturer, &i.Price)
	return i, err
}

const findProductById = `
SELECT id, name, brand, manufacturer, price
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id int32) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Brand, &i.Manufacturer, &i.Price)
	return i, err
}

type FindProductsParams struct {
	Name    *string
	Price   *int32
	OrderBy string
	Desc    bool
}

// buildFindProducts assembles the filtered listing query. Name matching is
// token based full-text search, not prefix or equality. Name and price
// filters are conjunctive when both are set. An empty OrderBy leaves the
// ordering to the store's natural scan order.
func buildFindProducts(arg FindProductsParams) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT id, name, brand, manufacturer, price FROM products")

	args := []interface{}{}
	conds := []string{}
	if arg.Name != nil {
		args = append(args, *arg.Name)
		conds = append(
			conds,
			fmt.Sprintf("to_tsvector('simple', name) @@ plainto_tsquery('simple', $%d)", len(args)),
		)
	}
	if arg.Price != nil {
		args = append(args, *arg.Price)
		conds = append(conds, fmt.Sprintf("price = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	switch strings.ToLower(arg.OrderBy) {
	case "name":
		sb.WriteString(" ORDER BY name")
	case "price":
		sb.WriteString(" ORDER BY price")
	default:
		return sb.String(), args
	}
	if arg.Desc {
		sb.WriteString(" DESC")
	}
	return sb.String(), args
}

func (q *Queries) FindProducts(c context.Context, arg FindProductsParams) ([]Product, error) {
	query, args := buildFindProducts(arg)
	rows, err := q.db.Query(c, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(&i.ID, &i.Name, &i.Brand, &i.Manufacturer, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
