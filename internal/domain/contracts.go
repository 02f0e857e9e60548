package domain

import "moviehub-bot/internal/model"

type TelevisionShowsUseCase interface {
	GetPopularTelevisionShows(page int, sub Subscriber[*model.TelevisionShowsPage])
	ClearSubscriptions()
}

type MoviesUseCase interface {
	GetPopularMovies(page int, sub Subscriber[*model.MoviesPage])
	ClearSubscriptions()
}

type PersonsUseCase interface {
	GetPopularPersons(page int, sub Subscriber[*model.PersonsPage])
	ClearSubscriptions()
}

type PersonDetailsUseCase interface {
	GetPersonDetails(personID int, sub Subscriber[*model.PersonDetails])
	ClearSubscriptions()
}
