package repository

import (
	"context"

	"moviehub-bot/internal/cache"
	"moviehub-bot/internal/model"
)

type TelevisionShowRepository struct {
	catalog Catalog
	cache   cache.Cache
}

func NewTelevisionShowRepository(catalog Catalog, c cache.Cache) *TelevisionShowRepository {
	return &TelevisionShowRepository{catalog: catalog, cache: c}
}

func (r *TelevisionShowRepository) PopularTelevisionShows(ctx context.Context, page int) (*model.TelevisionShowsPage, error) {
	return cached(ctx, r.cache, pageKey("tv", page), func(ctx context.Context) (*model.TelevisionShowsPage, error) {
		return r.catalog.PopularTelevisionShows(ctx, page)
	})
}

func (r *TelevisionShowRepository) TelevisionShow(ctx context.Context, showID int) (*model.TelevisionShow, error) {
	return cached(ctx, r.cache, idKey("tv", showID), func(ctx context.Context) (*model.TelevisionShow, error) {
		return r.catalog.TelevisionShow(ctx, showID)
	})
}
