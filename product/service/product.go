package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	inErrors "github.com/evlasov/eshop/internal/errors"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/repository"
	"github.com/evlasov/eshop/product/otel"
	"github.com/evlasov/eshop/product/pkg/request"
	"github.com/evlasov/eshop/product/pkg/response"
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewProductService(pool *pgxpool.Pool, queries *repository.Queries) ProductService {
	return ProductService{pool: pool, queries: queries}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.CreateProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Info().Msg("inserting product to database")
	product, err := svc.queries.InsertProduct(c, repository.InsertProductParams{
		Name:         param.Name,
		Brand:        param.Brand,
		Manufacturer: param.Manufacturer,
		Price:        int32(param.Price.IntPart()),
	})
	if err != nil {
		err = inErrors.FromStore(err, "failed inserting product")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Any(log.KeyProduct, product).Logger()
	logger.Info().Msg("inserted product to database")

	return product.Response(), nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	productID int32,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Int32(log.KeyProductID, productID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Info().Msg("finding product in database")
	product, err := svc.queries.FindProductById(c, productID)
	if err != nil {
		err = inErrors.FromStore(
			err,
			fmt.Sprintf("product with id %d not found", productID),
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Any(log.KeyProduct, product).Logger()
	logger.Info().Msg("found product in database")

	return product.Response(), nil
}

// FindProducts lists products narrowed by the caller's filter. Name and
// price conditions are conjunctive when both are present; ordering follows
// the validated order_by/desc pair.
func (svc ProductService) FindProducts(
	c context.Context,
	filter request.FilterProduct,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Any(log.KeyFilters, filter).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Info().Msg("finding products in database")
	products, err := svc.queries.FindProducts(c, repository.FindProductsParams{
		Name:    filter.Name,
		Price:   filter.Price,
		OrderBy: filter.OrderBy,
		Desc:    filter.Desc,
	})
	if err != nil {
		err = inErrors.FromStore(err, "failed finding products")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found %d products in database", len(products))

	items := make([]response.Product, 0, len(products))
	for _, product := range products {
		items = append(items, product.Response())
	}
	return items, nil
}
