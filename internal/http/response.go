package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/internal/errors"
	"github.com/evlasov/eshop/internal/otel"
)

func WriteJsonResponse(
	c context.Context,
	w http.ResponseWriter,
	header map[string]string,
	body map[string]interface{},
) {
	c, span := otel.Tracer.Start(c, "WriteJsonResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str("tag", "WriteJsonResponse").Logger()

	w.Header().Add(HeaderContentType, HeaderValueJson)
	for k, v := range header {
		w.Header().Add(k, v)
	}

	if v, ok := body["statusCode"]; ok {
		w.WriteHeader(v.(int))
	}

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}

// WriteErrorResponse maps the error kind to a transport status and writes
// the failure envelope.
func WriteErrorResponse(c context.Context, w http.ResponseWriter, err error) {
	WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "failed",
		"statusCode": errors.HTTPStatus(err),
		"message":    err.Error(),
	})
}
