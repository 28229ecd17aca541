package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	cartController "github.com/evlasov/eshop/cart/controller"
	cartService "github.com/evlasov/eshop/cart/service"
	customerController "github.com/evlasov/eshop/customer/controller"
	customerService "github.com/evlasov/eshop/customer/service"
	"github.com/evlasov/eshop/internal/config"
	"github.com/evlasov/eshop/internal/constants"
	"github.com/evlasov/eshop/internal/infra"
	"github.com/evlasov/eshop/internal/log"
	"github.com/evlasov/eshop/internal/middleware"
	"github.com/evlasov/eshop/internal/otel"
	"github.com/evlasov/eshop/internal/repository"
	productController "github.com/evlasov/eshop/product/controller"
	productService "github.com/evlasov/eshop/product/service"
)

func RunApp(c context.Context, insertStartData bool) {
	c, span := otel.Tracer.Start(c, "RunApp")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppEshop).
		Str(log.KeyTag, "main RunApp").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.AppEshop)
	logger = logger.With().Any(log.KeyConfig, cfg).Logger()
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	otelShutdowns, err := otel.InitOtelSdk(c, constants.AppEshop, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		c = logger.WithContext(c)
		if err := otel.ShutdownOtel(c, otelShutdowns); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	pool := infra.NewDatabaseClient(c, cfg.Database)
	defer func() {
		logger = logger.With().Str(log.KeyProcess, "shutting down database").Logger()
		logger.Info().Msg("shutting down database")
		pool.Close()
		logger.Info().Msg("shutdown database")
	}()
	logger.Info().Msg("initialized database")

	if insertStartData || cfg.Application.InsertStartData {
		logger = logger.With().Str(log.KeyProcess, "inserting start data").Logger()
		logger.Info().Msg("inserting start data")
		c = logger.WithContext(c)
		if err := infra.InsertStartData(c, pool); err != nil {
			err = fmt.Errorf("failed inserting start data with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("inserted start data")
	}

	logger = logger.With().Str(log.KeyProcess, "initializing services").Logger()
	logger.Info().Msg("initializing services")
	queries := repository.New(pool)
	customerSvc := customerService.NewCustomerService(pool, queries)
	productSvc := productService.NewProductService(pool, queries)
	cartSvc := cartService.NewCartService(pool, queries, cfg.Database.TxOptions())
	logger.Info().Msg("initialized services")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(constants.AppEshop),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	customerController.AttachCustomerController(api, &customerSvc)
	productController.AttachProductController(api, &productSvc)
	cartController.AttachCartController(api, &cartSvc, &customerSvc, &productSvc)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	httpServer := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger = logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("error=%w occured while server is running", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutting down http server").Logger()
	logger.Info().Msg("received interuption signal shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	shutdownCtx = logger.WithContext(shutdownCtx)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		err = fmt.Errorf("failed shutting down http server with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("shutdown http server")
}
