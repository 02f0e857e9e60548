// Package repository puts a cache in front of the TMDB client. Successful
// answers are stored as JSON; failures are never cached.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"moviehub-bot/internal/cache"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

// Catalog is the part of the TMDB client the repositories need.
type Catalog interface {
	PopularTelevisionShows(ctx context.Context, page int) (*model.TelevisionShowsPage, error)
	PopularMovies(ctx context.Context, page int) (*model.MoviesPage, error)
	PopularPersons(ctx context.Context, page int) (*model.PersonsPage, error)
	PersonDetails(ctx context.Context, personID int) (*model.PersonDetails, error)
	TelevisionShow(ctx context.Context, showID int) (*model.TelevisionShow, error)
	Movie(ctx context.Context, movieID int) (*model.Movie, error)
}

func cached[T any](ctx context.Context, c cache.Cache, key string, load func(context.Context) (*T, error)) (*T, error) {
	logger := config.GetLogger()

	if data, ok := c.Get(ctx, key); ok {
		var value T
		err := json.Unmarshal(data, &value)
		if err == nil {
			logger.Debug().Str("key", key).Msg("Cache hit")
			return &value, nil
		}
		logger.Warn().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return value, nil
	}
	c.Set(ctx, key, data)
	return value, nil
}

func pageKey(resource string, page int) string {
	return fmt.Sprintf("%s:popular:%d", resource, page)
}

func idKey(resource string, id int) string {
	return fmt.Sprintf("%s:%d", resource, id)
}
