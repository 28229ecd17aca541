package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/evlasov/eshop/internal/repository"
)

type (
	setupFunc    func(context.Context) (*pgxpool.Pool, *postgres.PostgresContainer, *repository.Queries, *ProductService)
	teardownFunc func(*pgxpool.Pool, *postgres.PostgresContainer)
)

func setup(t *testing.T) setupFunc {
	return func(c context.Context) (*pgxpool.Pool, *postgres.PostgresContainer, *repository.Queries, *ProductService) {
		pgContainer, err := postgres.Run(
			c,
			"postgres:16.6-alpine3.21",
			testcontainers.WithEnv(map[string]string{
				"POSTGRES_DB":       "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_PORT":     "5432",
				"POSTGRES_USER":     "postgres",
			}),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.WithDatabase("postgres"),
			postgres.BasicWaitStrategies(),
			postgres.WithInitScripts(
				filepath.Join("..", "..", "..", "migrations", "20250812090100_create_table_products.up.sql"),
			),
		)
		if err != nil {
			t.Fatalf("failed running postgres container with error: %s", err)
		}

		pgConnStr, err := pgContainer.ConnectionString(c)
		if err != nil {
			t.Fatalf("failed getting postgres connection string with error: %s", err)
		}

		pgConfig, err := pgxpool.ParseConfig(pgConnStr)
		if err != nil {
			t.Fatalf("failed parsing pgconfig with error: %s", err)
		}

		pool, err := pgxpool.NewWithConfig(c, pgConfig)
		if err != nil {
			t.Fatalf("failed creating postgres pool with error: %s", err)
		}

		if err = pool.Ping(c); err != nil {
			t.Fatalf("failed ping postgres pool with error: %s", err)
		}

		queries := repository.New(pool)
		productService := NewProductService(pool, queries)
		return pool, pgContainer, queries, &productService
	}
}

func teardown(t *testing.T) teardownFunc {
	return func(pool *pgxpool.Pool, pgContainer *postgres.PostgresContainer) {
		pool.Close()
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
}
