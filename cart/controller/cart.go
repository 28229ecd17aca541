package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/cart/otel"
	"github.com/evlasov/eshop/cart/service"
	"github.com/evlasov/eshop/cart/pkg/request"
	"github.com/evlasov/eshop/cart/pkg/response"
	customerService "github.com/evlasov/eshop/customer/service"
	customerRequest "github.com/evlasov/eshop/customer/pkg/request"
	inErrors "github.com/evlasov/eshop/internal/errors"
	inHttp "github.com/evlasov/eshop/internal/http"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/retry"
	"github.com/evlasov/eshop/internal/validate"
	productService "github.com/evlasov/eshop/product/service"
)

// CartController fronts the cart endpoints. It keeps references to the
// customer and product services because customer and product existence is
// checked here, before any cart operation touches the carts table.
type CartController struct {
	cartService     *service.CartService
	customerService *customerService.CustomerService
	productService  *productService.ProductService
}

func AttachCartController(
	mux *mux.Router,
	cart *service.CartService,
	customer *customerService.CustomerService,
	product *productService.ProductService,
) {
	controller := CartController{
		cartService:     cart,
		customerService: customer,
		productService:  product,
	}

	router := mux.PathPrefix("/cart").Subrouter()
	router.HandleFunc("", controller.FindCartByCustomerId).Methods(http.MethodGet)
	router.HandleFunc("", controller.AddProduct).Methods(http.MethodPost)
	router.HandleFunc("", controller.RemoveProduct).Methods(http.MethodDelete)
}

func (t CartController) FindCartByCustomerId(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCartByCustomerId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController FindCartByCustomerId").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating customer_id").Logger()
	logger.Info().Msg("validating customer_id")
	param, err := customerRequest.ParseFindCustomerById(r.URL.Query())
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().Int32(log.KeyCustomerID, param.CustomerID).Logger()
	logger.Info().Msgf("validated customer_id=%d", param.CustomerID)

	logger = logger.With().Str(log.KeyProcess, "checking customer").Logger()
	logger.Info().Msg("checking customer")
	c = logger.WithContext(c)
	err = retry.OnTransient(c, func() error {
		_, err := t.customerService.FindCustomerById(c, param.CustomerID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed checking customer with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("checked customer")

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	c = logger.WithContext(c)
	var cart response.Cart
	err = retry.OnTransient(c, func() error {
		var err error
		cart, err = t.cartService.FindCartByCustomerId(c, param.CustomerID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed finding cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("found cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("cart of customer with id %d found", param.CustomerID),
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (t CartController) AddProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.AddRemoveProduct{}
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
		err = inErrors.Wrap(inErrors.KindValidation, err, "failed validating request body")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().
		Int32(log.KeyCustomerID, reqBody.CustomerID).
		Int32(log.KeyProductID, reqBody.ProductID).
		Int32(log.KeyCount, reqBody.Count).
		Logger()
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "checking customer").Logger()
	logger.Info().Msg("checking customer")
	c = logger.WithContext(c)
	err := retry.OnTransient(c, func() error {
		_, err := t.customerService.FindCustomerById(c, reqBody.CustomerID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed checking customer with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("checked customer")

	logger = logger.With().Str(log.KeyProcess, "checking product").Logger()
	logger.Info().Msg("checking product")
	err = retry.OnTransient(c, func() error {
		_, err := t.productService.FindProductById(c, reqBody.ProductID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed checking product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("checked product")

	logger = logger.With().Str(log.KeyProcess, "adding product to cart").Logger()
	logger.Info().Msg("adding product to cart")
	c = logger.WithContext(c)
	cart, err := t.cartService.AddProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding product to cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("added product to cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully added product to cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (t CartController) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController RemoveProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.AddRemoveProduct{}
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
		err = inErrors.Wrap(inErrors.KindValidation, err, "failed validating request body")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().
		Int32(log.KeyCustomerID, reqBody.CustomerID).
		Int32(log.KeyProductID, reqBody.ProductID).
		Int32(log.KeyCount, reqBody.Count).
		Logger()
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "checking customer").Logger()
	logger.Info().Msg("checking customer")
	c = logger.WithContext(c)
	err := retry.OnTransient(c, func() error {
		_, err := t.customerService.FindCustomerById(c, reqBody.CustomerID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed checking customer with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("checked customer")

	logger = logger.With().Str(log.KeyProcess, "checking product").Logger()
	logger.Info().Msg("checking product")
	err = retry.OnTransient(c, func() error {
		_, err := t.productService.FindProductById(c, reqBody.ProductID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed checking product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("checked product")

	logger = logger.With().Str(log.KeyProcess, "removing product from cart").Logger()
	logger.Info().Msg("removing product from cart")
	c = logger.WithContext(c)
	cart, err := t.cartService.RemoveProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed removing product from cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("removed product from cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully removed product from cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}
