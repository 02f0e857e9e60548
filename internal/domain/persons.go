package domain

import (
	"context"

	"moviehub-bot/internal/model"
)

type PersonsRepository interface {
	PopularPersons(ctx context.Context, page int) (*model.PersonsPage, error)
	PersonDetails(ctx context.Context, personID int) (*model.PersonDetails, error)
}

type PersonsService struct {
	repository    PersonsRepository
	subscriptions Subscriptions
}

func NewPersonsService(repository PersonsRepository) *PersonsService {
	return &PersonsService{repository: repository}
}

func (s *PersonsService) GetPopularPersons(page int, sub Subscriber[*model.PersonsPage]) {
	subscribe(&s.subscriptions, "popular_persons", sub, func(ctx context.Context) (*model.PersonsPage, error) {
		return s.repository.PopularPersons(ctx, page)
	})
}

func (s *PersonsService) ClearSubscriptions() {
	s.subscriptions.Clear()
}

func (s *PersonsService) Wait() {
	s.subscriptions.Wait()
}

type PersonDetailsService struct {
	repository    PersonsRepository
	subscriptions Subscriptions
}

func NewPersonDetailsService(repository PersonsRepository) *PersonDetailsService {
	return &PersonDetailsService{repository: repository}
}

func (s *PersonDetailsService) GetPersonDetails(personID int, sub Subscriber[*model.PersonDetails]) {
	subscribe(&s.subscriptions, "person_details", sub, func(ctx context.Context) (*model.PersonDetails, error) {
		return s.repository.PersonDetails(ctx, personID)
	})
}

func (s *PersonDetailsService) ClearSubscriptions() {
	s.subscriptions.Clear()
}

func (s *PersonDetailsService) Wait() {
	s.subscriptions.Wait()
}
