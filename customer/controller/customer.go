package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/customer/otel"
	"github.com/evlasov/eshop/customer/service"
	"github.com/evlasov/eshop/customer/pkg/request"
	"github.com/evlasov/eshop/customer/pkg/response"
	inErrors "github.com/evlasov/eshop/internal/errors"
	inHttp "github.com/evlasov/eshop/internal/http"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/retry"
	"github.com/evlasov/eshop/internal/validate"
)

type CustomerController struct {
	service *service.CustomerService
}

func AttachCustomerController(mux *mux.Router, service *service.CustomerService) {
	controller := CustomerController{service: service}

	router := mux.PathPrefix("/customers").Subrouter()
	router.HandleFunc("", controller.InsertCustomer).Methods(http.MethodPost)
	router.HandleFunc("", controller.FindCustomerById).Methods(http.MethodGet)
}

func (t CustomerController) InsertCustomer(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CustomerController InsertCustomer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerController InsertCustomer").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.CreateCustomer{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = inErrors.Wrap(inErrors.KindValidation, err, "failed decoding request body")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	if err := validate.New().StructCtx(c, reqBody); err != nil {
		err = inErrors.Wrap(inErrors.KindValidation, err, "name should contains only letters")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "inserting customer").Logger()
	logger.Info().Msg("inserting customer")
	c = logger.WithContext(c)
	customer, err := t.service.InsertCustomer(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting customer with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("inserted customer")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully inserted customer",
		"data": map[string]interface{}{
			"customer": customer,
		},
	})
}

func (t CustomerController) FindCustomerById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CustomerController FindCustomerById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerController FindCustomerById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating customer_id").Logger()
	logger.Info().Msg("validating customer_id")
	param, err := request.ParseFindCustomerById(r.URL.Query())
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().Int32(log.KeyCustomerID, param.CustomerID).Logger()
	logger.Info().Msgf("validated customer_id=%d", param.CustomerID)

	logger = logger.With().Str(log.KeyProcess, "finding customer").Logger()
	logger.Info().Msg("finding customer")
	c = logger.WithContext(c)
	var customer response.Customer
	err = retry.OnTransient(c, func() error {
		var err error
		customer, err = t.service.FindCustomerById(c, param.CustomerID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed finding customer with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("found customer")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("customer with id %d found", param.CustomerID),
		"data": map[string]interface{}{
			"customer": customer,
		},
	})
}
