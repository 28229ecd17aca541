package repository

import (
	"context"
)

const insertCartLines = `
INSERT INTO carts (customer_id, product_id)
SELECT $1, $2
FROM generate_series(1, $3::int)
`

type InsertCartLinesParams struct {
	CustomerID int32
	ProductID  int32
	Count      int32
}

// InsertCartLines inserts Count rows for the (customer, product) pair in one
// statement so the batch is all-or-nothing even without a surrounding
// transaction.
func (q *Queries) InsertCartLines(c context.Context, arg InsertCartLinesParams) (int64, error) {
	tag, err := q.db.Exec(c, insertCartLines, arg.CustomerID, arg.ProductID, arg.Count)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCartLines = `
DELETE FROM carts
WHERE id IN (
	SELECT id
	FROM carts
	WHERE customer_id = $1 AND product_id = $2
	ORDER BY id
	LIMIT $3
	FOR UPDATE
)
`

type DeleteCartLinesParams struct {
	CustomerID int32
	ProductID  int32
	Count      int32
}

// DeleteCartLines removes up to Count rows, oldest first. The FOR UPDATE
// subselect locks the chosen rows so no other transaction can delete them
// between selection and deletion.
func (q *Queries) DeleteCartLines(c context.Context, arg DeleteCartLinesParams) (int64, error) {
	tag, err := q.db.Exec(c, deleteCartLines, arg.CustomerID, arg.ProductID, arg.Count)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findCartByCustomerId = `
SELECT c.product_id, p.name, COUNT(c.id) AS sub_total_count, SUM(p.price)::bigint AS sub_total_price
FROM carts c
JOIN products p ON p.id = c.product_id
WHERE c.customer_id = $1
GROUP BY c.product_id, p.name
`

type FindCartByCustomerIdRow struct {
	Name          string
	SubTotalCount int64
	SubTotalPrice int64
	ProductID     int32
}

// FindCartByCustomerId aggregates the customer's cart lines per product.
// Each row is one unit, so SUM(p.price) over the joined rows is already
// count times unit price. A single statement keeps the read atomic.
func (q *Queries) FindCartByCustomerId(
	c context.Context,
	customerID int32,
) ([]FindCartByCustomerIdRow, error) {
	rows, err := q.db.Query(c, findCartByCustomerId, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindCartByCustomerIdRow{}
	for rows.Next() {
		var i FindCartByCustomerIdRow
		if err := rows.Scan(&i.ProductID, &i.Name, &i.SubTotalCount, &i.SubTotalPrice); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
