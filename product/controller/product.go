package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/evlasov/eshop/internal/errors"
	inHttp "github.com/evlasov/eshop/internal/http"
	"github.com/evlasov/eshop/internal/log"
	inOtel "github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/retry"
	"github.com/evlasov/eshop/internal/validate"
	"github.com/evlasov/eshop/product/otel"
	"github.com/evlasov/eshop/product/service"
	"github.com/evlasov/eshop/product/pkg/request"
	"github.com/evlasov/eshop/product/pkg/response"
)

type ProductController struct {
	service *service.ProductService
}

func AttachProductController(mux *mux.Router, service *service.ProductService) {
	controller := ProductController{service: service}

	router := mux.PathPrefix("/products").Subrouter()
	router.HandleFunc("", controller.InsertProduct).Methods(http.MethodPost)
	router.HandleFunc("", controller.FindProducts).Methods(http.MethodGet)
	router.HandleFunc("/{productId}", controller.FindProductById).Methods(http.MethodGet)
}

func (t ProductController) InsertProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.CreateProduct{}
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
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "inserting product").Logger()
	logger.Info().Msg("inserting product")
	c = logger.WithContext(c)
	product, err := t.service.InsertProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("inserted product")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully inserted product",
		"data": map[string]interface{}{
			"product": product,
		},
	})
}

func (t ProductController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating query params").Logger()
	logger.Info().Msg("validating query params")
	filter, err := request.ParseFilterProduct(r.URL.Query())
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().Any(log.KeyFilters, filter).Logger()
	logger.Info().Msg("validated query params")

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	var products []response.Product
	err = retry.OnTransient(c, func() error {
		var err error
		products, err = t.service.FindProducts(c, filter)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msgf("found %d products", len(products))

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully found products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (t ProductController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProductById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating productId").Logger()
	logger.Info().Msg("validating productId")
	param, err := request.ParseFindProductById(mux.Vars(r)["productId"])
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger = logger.With().Int32(log.KeyProductID, param.ProductID).Logger()
	logger.Info().Msgf("validated productId=%d", param.ProductID)

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	var product response.Product
	err = retry.OnTransient(c, func() error {
		var err error
		product, err = t.service.FindProductById(c, param.ProductID)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, err)
		return
	}
	logger.Info().Msg("found product")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("product with id %d found", param.ProductID),
		"data": map[string]interface{}{
			"product": product,
		},
	})
}
