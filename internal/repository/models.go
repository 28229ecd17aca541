package repository

type Customer struct {
	Name string
	ID   int32
}

type Product struct {
	Name         string
	Brand        string
	Manufacturer string
	ID           int32
	Price        int32
}

// CartLine is one unit of a product in a customer's cart. Quantity is row
// multiplicity, there is no counter column.
type CartLine struct {
	ID         int32
	CustomerID int32
	ProductID  int32
}
