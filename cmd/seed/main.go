package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/shared"
	pgrepo "staybook/internal/storage/postgres"
)

// seedHotels is the demo catalog; each hotel gets a floor of rooms.
var seedHotels = []domain.Hotel{
	{Name: "Palácio do Tejo", Address: "Praça do Comércio 1", City: "Lisbon", Country: "PT"},
	{Name: "Hotel Bosphorus", Address: "İstiklal Cd. 12", City: "Istanbul", Country: "TR"},
	{Name: "Riverside Inn", Address: "Quai des Grands Augustins 5", City: "Paris", Country: "FR"},
	{Name: "Alpenblick", Address: "Bahnhofstrasse 8", City: "Zurich", Country: "CH"},
	{Name: "Casa del Sol", Address: "Calle Mayor 3", City: "Madrid", Country: "ES"},
}

var roomSizes = []domain.RoomSize{domain.RoomSingle, domain.RoomDouble, domain.RoomTriple, domain.RoomQuadruple}

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.SeedWorkers).Msg("seed starting")

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pgxpool.New failed")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	repo := pgrepo.New(pool)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cmd := app.NewCommandService(repo, repo, cache)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range seedHotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotel domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedHotel(ctx, cmd, hotel); err != nil {
				log.Warn().Str("hotel", hotel.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("hotel", hotel.Name).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func seedHotel(ctx context.Context, cmd *app.CommandService, h domain.Hotel) error {
	created, err := cmd.CreateHotel(ctx, h)
	if err != nil {
		return err
	}
	for i := 0; i < 10; i++ {
		room := domain.Room{
			HotelID:    created.ID,
			Number:     fmt.Sprintf("1%02d", i+1),
			Size:       roomSizes[i%len(roomSizes)],
			PriceCents: int64(8000 + 1500*i),
		}
		if _, err := cmd.CreateRoom(ctx, room); err != nil {
			return err
		}
	}
	return nil
}
