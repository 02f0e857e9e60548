package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"moviehub-bot/internal/bot"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/metrics"
	"moviehub-bot/internal/redis"
)

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	logger := config.GetLogger()

	if cfg.TelegramToken == "" {
		return errors.New("telegram token is not set (TELEGRAM_TOKEN)")
	}

	cat, err := newCatalog(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create cache")
		return err
	}
	defer cat.Close()

	redisClient, err := redis.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Redis client")
		return err
	}
	defer redisClient.Close()

	tgBot, err := bot.NewBot(cfg.TelegramToken, bot.Dependencies{
		TelevisionShows: cat.televisionShows,
		Movies:          cat.movies,
		Persons:         cat.persons,
		State:           redisClient,
		Posters:         bot.NewPosterCache(cfg.Image.Fallback, cfg.Image.CacheSize, cfg.Image.CacheTTL),
		ImageURL:        cat.tmdb.ImageURL,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create bot")
		return err
	}

	if cfg.Metrics.Enabled {
		server := metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", server.Addr).Msg("Starting metrics server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Metrics server failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	go tgBot.Start()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	<-stopChan
	logger.Info().Msg("Shutting down gracefully...")
	tgBot.Stop()
	logger.Info().Msg("Application shutdown complete")
	return nil
}
