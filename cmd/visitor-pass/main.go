// @title         visitor-pass-service API
// @version       1.0
// @description   Issues and verifies short-lived visitor-pass credentials via the sandbox issuer/verifier.
// @BasePath      /api
// @schemes       http
// @host          localhost:3000
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/dwlab/visitor-pass-service/docs"
	icfg "github.com/dwlab/visitor-pass-service/internal/config"
	ih "github.com/dwlab/visitor-pass-service/internal/http"
	"github.com/dwlab/visitor-pass-service/internal/repo"
	"github.com/dwlab/visitor-pass-service/internal/sweep"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := icfg.Load()

	store := repo.NewStore(cfg.WhitelistFile)

	sweeper := sweep.New(store, cfg.SweepEvery)
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.SweepEvery).Msg("sweeper")
	}
	defer sweeper.Stop()

	e := ih.Router(store, cfg)

	srv := &http.Server{
		Addr:              cfg.Bind,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("bind", cfg.Bind).Msg("visitor-pass-service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
