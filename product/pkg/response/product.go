package response

type Product struct {
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Manufacturer string `json:"manufacturer"`
	ProductID    int32  `json:"product_id"`
	Price        int32  `json:"price"`
}
