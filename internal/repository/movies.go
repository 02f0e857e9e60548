package repository

import (
	"context"

	"moviehub-bot/internal/cache"
	"moviehub-bot/internal/model"
)

type MovieRepository struct {
	catalog Catalog
	cache   cache.Cache
}

func NewMovieRepository(catalog Catalog, c cache.Cache) *MovieRepository {
	return &MovieRepository{catalog: catalog, cache: c}
}

func (r *MovieRepository) PopularMovies(ctx context.Context, page int) (*model.MoviesPage, error) {
	return cached(ctx, r.cache, pageKey("movie", page), func(ctx context.Context) (*model.MoviesPage, error) {
		return r.catalog.PopularMovies(ctx, page)
	})
}

func (r *MovieRepository) Movie(ctx context.Context, movieID int) (*model.Movie, error) {
	return cached(ctx, r.cache, idKey("movie", movieID), func(ctx context.Context) (*model.Movie, error) {
		return r.catalog.Movie(ctx, movieID)
	})
}
