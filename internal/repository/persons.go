package repository

import (
	"context"

	"moviehub-bot/internal/cache"
	"moviehub-bot/internal/model"
)

type PersonRepository struct {
	catalog Catalog
	cache   cache.Cache
}

func NewPersonRepository(catalog Catalog, c cache.Cache) *PersonRepository {
	return &PersonRepository{catalog: catalog, cache: c}
}

func (r *PersonRepository) PopularPersons(ctx context.Context, page int) (*model.PersonsPage, error) {
	return cached(ctx, r.cache, pageKey("person", page), func(ctx context.Context) (*model.PersonsPage, error) {
		return r.catalog.PopularPersons(ctx, page)
	})
}

func (r *PersonRepository) PersonDetails(ctx context.Context, personID int) (*model.PersonDetails, error) {
	return cached(ctx, r.cache, idKey("person", personID), func(ctx context.Context) (*model.PersonDetails, error) {
		return r.catalog.PersonDetails(ctx, personID)
	})
}
