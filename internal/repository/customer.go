package repository

import (
	"context"
)

const insertCustomer = `
INSERT INTO customers (name)
VALUES ($1)
RETURNING id, name
`

func (q *Queries) InsertCustomer(c context.Context, name string) (Customer, error) {
	row := q.db.QueryRow(c, insertCustomer, name)
	var i Customer
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const findCustomerById = `
SELECT id, name
FROM customers
WHERE id = $1
`

func (q *Queries) FindCustomerById(c context.Context, id int32) (Customer, error) {
	row := q.db.QueryRow(c, findCustomerById, id)
	var i Customer
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}
