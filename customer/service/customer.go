package service

import (
	"fmt"

	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/customer/otel"
	"github.com/evlasov/eshop/customer/pkg/request"
	"github.com/evlasov/eshop/customer/pkg/response"
	inErrors "github.com/evlasov/eshop/internal/errors"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/repository"
)

type CustomerService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewCustomerService(pool *pgxpool.Pool, queries *repository.Queries) CustomerService {
	return CustomerService{pool: pool, queries: queries}
}

func (svc CustomerService) InsertCustomer(
	c context.Context,
	param request.CreateCustomer,
) (response.Customer, error) {
	c, span := otel.Tracer.Start(c, "CustomerService InsertCustomer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerService InsertCustomer").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting customer to database").Logger()
	logger.Info().Msg("inserting customer to database")
	customer, err := svc.queries.InsertCustomer(c, param.Name)
	if err != nil {
		err = inErrors.FromStore(err, "failed inserting customer")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Customer{}, err
	}
	logger = logger.With().Any(log.KeyCustomer, customer).Logger()
	logger.Info().Msg("inserted customer to database")

	return customer.Response(), nil
}

func (svc CustomerService) FindCustomerById(
	c context.Context,
	customerID int32,
) (response.Customer, error) {
	c, span := otel.Tracer.Start(c, "CustomerService FindCustomerById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerService FindCustomerById").
		Int32(log.KeyCustomerID, customerID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding customer in database").Logger()
	logger.Info().Msg("finding customer in database")
	customer, err := svc.queries.FindCustomerById(c, customerID)
	if err != nil {
		err = inErrors.FromStore(
			err,
			fmt.Sprintf("customer with id %d not found", customerID),
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Customer{}, err
	}
	logger = logger.With().Any(log.KeyCustomer, customer).Logger()
	logger.Info().Msg("found customer in database")

	return customer.Response(), nil
}
