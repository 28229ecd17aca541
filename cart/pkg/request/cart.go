package request

// AddRemoveProduct is the body of both cart mutations. Count is how many
// unit rows to insert or delete; the int32 type bounds it to the 32-bit
// signed range the schema uses for ids and prices.
type AddRemoveProduct struct {
	CustomerID int32 `validate:"required,gte=1" json:"customer_id"`
	ProductID  int32 `validate:"required,gte=1" json:"product_id"`
	Count      int32 `validate:"required,gte=1" json:"count"`
}
