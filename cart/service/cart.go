package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/cart/otel"
	"github.com/evlasov/eshop/cart/pkg/request"
	"github.com/evlasov/eshop/cart/pkg/response"
	inErrors "github.com/evlasov/eshop/internal/errors"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/repository"
)

type CartService struct {
	pool      *pgxpool.Pool
	queries   *repository.Queries
	txOptions pgx.TxOptions
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	txOptions pgx.TxOptions,
) CartService {
	return CartService{pool: pool, queries: queries, txOptions: txOptions}
}

// summary aggregates the customer's cart lines through the given queries,
// which may be bound to an open transaction. An empty cart is a valid
// summary with zero totals, not an error.
func summary(
	c context.Context,
	queries *repository.Queries,
	customerID int32,
) (response.Cart, error) {
	rows, err := queries.FindCartByCustomerId(c, customerID)
	if err != nil {
		return response.Cart{}, inErrors.FromStore(err, "failed aggregating cart")
	}
	cart := response.Cart{
		CustomerID: customerID,
		Products:   make([]response.ProductInCart, 0, len(rows)),
	}
	for _, row := range rows {
		cart.Products = append(cart.Products, row.Response())
		cart.TotalCount += row.SubTotalCount
		cart.TotalPrice += row.SubTotalPrice
	}
	return cart, nil
}

func (svc CartService) FindCartByCustomerId(
	c context.Context,
	customerID int32,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartByCustomerId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCartByCustomerId").
		Int32(log.KeyCustomerID, customerID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "aggregating cart").Logger()
	logger.Info().Msg("aggregating cart")
	cart, err := summary(c, svc.queries, customerID)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Any(log.KeyCart, cart).Logger()
	logger.Info().Msg("aggregated cart")

	return cart, nil
}

// AddProduct inserts count unit rows for the (customer, product) pair and
// returns the refreshed summary. Insert and re-aggregation share one
// transaction so either all count rows land or none do, and the summary
// reflects exactly this mutation.
func (svc CartService) AddProduct(
	c context.Context,
	param request.AddRemoveProduct,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddProduct").
		Int32(log.KeyCustomerID, param.CustomerID).
		Int32(log.KeyProductID, param.ProductID).
		Int32(log.KeyCount, param.Count).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, svc.txOptions)
	if err != nil {
		err = inErrors.FromStore(err, "failed initializing transaction")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	defer func() {
		if err := tx.Rollback(c); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()
	logger.Info().Msg("initialized transaction")

	logger = logger.With().Str(log.KeyProcess, "inserting cart lines").Logger()
	logger.Info().Msg("inserting cart lines")
	inserted, err := svc.queries.WithTx(tx).InsertCartLines(c, repository.InsertCartLinesParams{
		CustomerID: param.CustomerID,
		ProductID:  param.ProductID,
		Count:      param.Count,
	})
	if err != nil {
		err = inErrors.FromStore(err, "failed inserting cart lines")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Int64(log.KeyRowsAffected, inserted).Logger()
	logger.Info().Msgf("inserted %d cart lines", inserted)

	logger = logger.With().Str(log.KeyProcess, "aggregating cart").Logger()
	logger.Info().Msg("aggregating cart")
	cart, err := summary(c, svc.queries.WithTx(tx), param.CustomerID)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Any(log.KeyCart, cart).Logger()
	logger.Info().Msg("aggregated cart")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = inErrors.FromStore(err, "failed committing transaction")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("committed transaction")

	return cart, nil
}

// RemoveProduct deletes up to count unit rows for the (customer, product)
// pair. Zero matching rows is a hard NotFound failure; fewer than count is
// fine and removes everything available. Selection, deletion and the
// refreshed summary run in one transaction.
func (svc CartService) RemoveProduct(
	c context.Context,
	param request.AddRemoveProduct,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveProduct").
		Int32(log.KeyCustomerID, param.CustomerID).
		Int32(log.KeyProductID, param.ProductID).
		Int32(log.KeyCount, param.Count).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, svc.txOptions)
	if err != nil {
		err = inErrors.FromStore(err, "failed initializing transaction")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	defer func() {
		if err := tx.Rollback(c); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()
	logger.Info().Msg("initialized transaction")

	logger = logger.With().Str(log.KeyProcess, "deleting cart lines").Logger()
	logger.Info().Msg("deleting cart lines")
	deleted, err := svc.queries.WithTx(tx).DeleteCartLines(c, repository.DeleteCartLinesParams{
		CustomerID: param.CustomerID,
		ProductID:  param.ProductID,
		Count:      param.Count,
	})
	if err != nil {
		err = inErrors.FromStore(err, "failed deleting cart lines")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if deleted == 0 {
		err = inErrors.Newf(
			inErrors.KindNotFound,
			"product with id %d not found in the cart",
			param.ProductID,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Int64(log.KeyRowsAffected, deleted).Logger()
	logger.Info().Msgf("deleted %d cart lines", deleted)

	logger = logger.With().Str(log.KeyProcess, "aggregating cart").Logger()
	logger.Info().Msg("aggregating cart")
	cart, err := summary(c, svc.queries.WithTx(tx), param.CustomerID)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().Any(log.KeyCart, cart).Logger()
	logger.Info().Msg("aggregated cart")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = inErrors.FromStore(err, "failed committing transaction")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("committed transaction")

	return cart, nil
}
