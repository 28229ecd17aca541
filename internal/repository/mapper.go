package repository

import (
	cartResponse "github.com/evlasov/eshop/cart/pkg/response"
	customerResponse "github.com/evlasov/eshop/customer/pkg/response"
	productResponse "github.com/evlasov/eshop/product/pkg/response"
)

func (c Customer) Response() customerResponse.Customer {
	return customerResponse.Customer{
		CustomerID: c.ID,
		Name:       c.Name,
	}
}

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ProductID:    p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Manufacturer: p.Manufacturer,
		Price:        p.Price,
	}
}

func (r FindCartByCustomerIdRow) Response() cartResponse.ProductInCart {
	return cartResponse.ProductInCart{
		ProductID:     r.ProductID,
		Name:          r.Name,
		SubTotalCount: r.SubTotalCount,
		SubTotalPrice: r.SubTotalPrice,
	}
}
