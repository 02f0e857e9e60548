package main

import (
	"github.com/spf13/cobra"

	"moviehub-bot/internal/api"
	"moviehub-bot/internal/cache"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/repository"
)

var (
	configFile string
	cfg        *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "moviehub",
		Short:        "Browse popular TV shows, movies and people on TMDB",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default configs/config.yml)")

	root.AddCommand(
		botCmd(),
		televisionShowsCmd(),
		moviesCmd(),
		peopleCmd(),
		personCmd(),
	)
	return root
}

// catalog is the TMDB client with its cached repositories.
type catalog struct {
	tmdb            *api.TMDBAPI
	cache           cache.Cache
	televisionShows *repository.TelevisionShowRepository
	movies          *repository.MovieRepository
	persons         *repository.PersonRepository
}

func newCatalog(cfg *config.Config) (*catalog, error) {
	c, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           cfg.Cache.TTL,
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Group:         "tmdb",
	})
	if err != nil {
		return nil, err
	}

	tmdb := api.NewTMDBAPIFromConfig(cfg)
	return &catalog{
		tmdb:            tmdb,
		cache:           c,
		televisionShows: repository.NewTelevisionShowRepository(tmdb, c),
		movies:          repository.NewMovieRepository(tmdb, c),
		persons:         repository.NewPersonRepository(tmdb, c),
	}, nil
}

func (c *catalog) Close() {
	if err := c.cache.Close(); err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Failed to close cache")
	}
}
