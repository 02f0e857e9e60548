package domain

import (
	"context"

	"moviehub-bot/internal/model"
)

type MoviesRepository interface {
	PopularMovies(ctx context.Context, page int) (*model.MoviesPage, error)
}

type MoviesService struct {
	repository    MoviesRepository
	subscriptions Subscriptions
}

func NewMoviesService(repository MoviesRepository) *MoviesService {
	return &MoviesService{repository: repository}
}

func (s *MoviesService) GetPopularMovies(page int, sub Subscriber[*model.MoviesPage]) {
	subscribe(&s.subscriptions, "popular_movies", sub, func(ctx context.Context) (*model.MoviesPage, error) {
		return s.repository.PopularMovies(ctx, page)
	})
}

func (s *MoviesService) ClearSubscriptions() {
	s.subscriptions.Clear()
}

func (s *MoviesService) Wait() {
	s.subscriptions.Wait()
}
