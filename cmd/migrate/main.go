package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/observability"
	"staybook/internal/shared"
	pgrepo "staybook/internal/storage/postgres"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pgxpool.New failed")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	if err := pgrepo.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.MigrationsDir).Msg("migrations failed")
	}
	log.Info().Str("dir", cfg.MigrationsDir).Msg("migrations up to date")
}
