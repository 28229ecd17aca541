package response

type ProductInCart struct {
	Name          string `json:"name"`
	SubTotalCount int64  `json:"sub_total_count"`
	SubTotalPrice int64  `json:"sub_total_price"`
	ProductID     int32  `json:"product_id"`
}

// Cart is the aggregated summary of a customer's cart. Totals are int64
// because they sum many int32 unit prices.
type Cart struct {
	Products   []ProductInCart `json:"products"`
	TotalCount int64           `json:"total_count"`
	TotalPrice int64           `json:"total_price"`
	CustomerID int32           `json:"customer_id"`
}
