package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"grindtrack/internal/adapter/file"
	adapthttp "grindtrack/internal/adapter/http"
	"grindtrack/internal/adapter/memory"
	"grindtrack/internal/adapter/postgres"
	"grindtrack/internal/adapter/redis"
	"grindtrack/internal/app"
	"grindtrack/internal/config"
	"grindtrack/internal/domain"
)

func main() {
	cfg := config.Load()

	catalog := domain.DefaultCatalog()
	if cfg.CatalogFile != "" {
		var err error
		catalog, err = domain.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer closeStore()
	log.Printf("using %s store", cfg.Store)

	tracker := app.NewTrackerService(store, catalog)

	h := adapthttp.New(tracker, cfg.WebDir, cfg.HistoryDays).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (domain.RosterStore, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case "memory":
		return memory.New(), noop, nil

	case "file":
		s, err := file.New(cfg.DataFile)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case "redis":
		s, err := redis.Open(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil

	case "postgres":
		if cfg.PostgresURL == "" {
			return nil, noop, errors.New("DATABASE_URL is required for the postgres store")
		}
		s, err := postgres.Open(cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
