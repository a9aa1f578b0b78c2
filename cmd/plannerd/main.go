package main

import (
	"flag"

	"github.com/danmuck/chrolisctl/internal/config"
	"github.com/danmuck/chrolisctl/internal/observability"
	"github.com/danmuck/chrolisctl/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "planner config path (defaults built in)")
	flag.Parse()

	logger := observability.InitLogger("plannerd")
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load planner config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded planner config")
	}

	planner, err := server.New(cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build planner")
	}
	log.Info().Str("name", planner.Name).Str("addr", planner.Addr).Msg("planner started")
	if err := planner.Serve(); err != nil {
		log.Fatal().Err(err).Msg("planner stopped")
	}
}
