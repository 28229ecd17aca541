package response

type Customer struct {
	Name       string `json:"name"`
	CustomerID int32  `json:"customer_id"`
}
