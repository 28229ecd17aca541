package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/evlasov/eshop/cart/pkg/request"
	inErrors "github.com/evlasov/eshop/internal/errors"
)

func TestFindCartByCustomerIdEmptyCart(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	customer := seedCustomer(t, c, queries, "Alice")

	cart, err := cartService.FindCartByCustomerId(c, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, cart.CustomerID)
	assert.Empty(t, cart.Products)
	assert.Zero(t, cart.TotalCount)
	assert.Zero(t, cart.TotalPrice)

	again, err := cartService.FindCartByCustomerId(c, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, cart, again)
}

func TestAddThenRemoveProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	customer := seedCustomer(t, c, queries, "Alice")
	product := seedProduct(t, c, queries, "Widget", 10)

	cart, err := cartService.AddProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Count:      3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, product.ID, cart.Products[0].ProductID)
	assert.Equal(t, int64(3), cart.Products[0].SubTotalCount)
	assert.Equal(t, int64(30), cart.Products[0].SubTotalPrice)
	assert.Equal(t, int64(3), cart.TotalCount)
	assert.Equal(t, int64(30), cart.TotalPrice)

	cart, err = cartService.RemoveProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Count:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.TotalCount)
	assert.Equal(t, int64(10), cart.TotalPrice)

	cart, err = cartService.RemoveProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Count:      5,
	})
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
	assert.Zero(t, cart.TotalCount)
	assert.Zero(t, cart.TotalPrice)

	_, err = cartService.RemoveProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Count:      1,
	})
	require.Error(t, err)
	assert.Equal(t, inErrors.KindNotFound, inErrors.KindOf(err))
}

func TestCartAggregatesPerProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	customer := seedCustomer(t, c, queries, "Bob")
	widget := seedProduct(t, c, queries, "Widget", 10)
	gadget := seedProduct(t, c, queries, "Gadget", 25)

	_, err := cartService.AddProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  widget.ID,
		Count:      2,
	})
	require.NoError(t, err)
	cart, err := cartService.AddProduct(c, request.AddRemoveProduct{
		CustomerID: customer.ID,
		ProductID:  gadget.ID,
		Count:      1,
	})
	require.NoError(t, err)

	require.Len(t, cart.Products, 2)
	assert.Equal(t, int64(3), cart.TotalCount)
	assert.Equal(t, int64(45), cart.TotalPrice)

	subTotals := map[int32]int64{}
	for _, item := range cart.Products {
		subTotals[item.ProductID] = item.SubTotalPrice
	}
	assert.Equal(t, int64(20), subTotals[widget.ID])
	assert.Equal(t, int64(25), subTotals[gadget.ID])
}

func TestConcurrentAddProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	customer := seedCustomer(t, c, queries, "Alice")
	product := seedProduct(t, c, queries, "Widget", 10)

	group, groupCtx := errgroup.WithContext(c)
	for range 4 {
		group.Go(func() error {
			_, err := cartService.AddProduct(groupCtx, request.AddRemoveProduct{
				CustomerID: customer.ID,
				ProductID:  product.ID,
				Count:      5,
			})
			return err
		})
	}
	require.NoError(t, group.Wait())

	cart, err := cartService.FindCartByCustomerId(c, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), cart.TotalCount)
	assert.Equal(t, int64(200), cart.TotalPrice)
}
