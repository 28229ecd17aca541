package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/evlasov/eshop/internal/log"
	"github.com/evlasov/eshop/internal/repository"
)

// InsertStartData seeds a demo catalog and customer so a fresh deployment
// has something to browse. Skipped when the customers table is not empty.
func InsertStartData(c context.Context, pool *pgxpool.Pool) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "main InsertStartData").
		Str(log.KeyProcess, "inserting start data").
		Logger()

	var existing int64
	err := pool.QueryRow(c, "SELECT COUNT(id) FROM customers").Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed counting customers with error=%w", err)
	}
	if existing > 0 {
		logger.Info().Msg("start data already present, skipping")
		return nil
	}

	queries := repository.New(pool)

	logger.Info().Msg("inserting start customers")
	for _, name := range []string{"Alice", "Bob"} {
		if _, err := queries.InsertCustomer(c, name); err != nil {
			return fmt.Errorf("failed inserting start customer with error=%w", err)
		}
	}
	logger.Info().Msg("inserted start customers")

	logger.Info().Msg("inserting start products")
	startProducts := []repository.InsertProductParams{
		{Name: "Widget", Brand: "Acme", Manufacturer: "Acme Corp", Price: 10},
		{Name: "Gadget", Brand: "Acme", Manufacturer: "Acme Corp", Price: 10},
		{Name: "Sprocket", Brand: "Globex", Manufacturer: "Globex Inc", Price: 20},
	}
	for _, p := range startProducts {
		if _, err := queries.InsertProduct(c, p); err != nil {
			return fmt.Errorf("failed inserting start product with error=%w", err)
		}
	}
	logger.Info().Msg("inserted start products")

	return nil
}
