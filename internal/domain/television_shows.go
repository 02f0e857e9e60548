package domain

import (
	"context"

	"moviehub-bot/internal/model"
)

type TelevisionShowsRepository interface {
	PopularTelevisionShows(ctx context.Context, page int) (*model.TelevisionShowsPage, error)
}

type TelevisionShowsService struct {
	repository    TelevisionShowsRepository
	subscriptions Subscriptions
}

func NewTelevisionShowsService(repository TelevisionShowsRepository) *TelevisionShowsService {
	return &TelevisionShowsService{repository: repository}
}

func (s *TelevisionShowsService) GetPopularTelevisionShows(page int, sub Subscriber[*model.TelevisionShowsPage]) {
	subscribe(&s.subscriptions, "popular_tv", sub, func(ctx context.Context) (*model.TelevisionShowsPage, error) {
		return s.repository.PopularTelevisionShows(ctx, page)
	})
}

func (s *TelevisionShowsService) ClearSubscriptions() {
	s.subscriptions.Clear()
}

func (s *TelevisionShowsService) Wait() {
	s.subscriptions.Wait()
}
