package presenter

import "moviehub-bot/internal/model"

// ListView is the display side of a paginated list screen.
type ListView interface {
	ShowEmptyView()
	HideEmptyView()
	ShowErrorView()
	HideErrorView()
	SetErrorText(text string)
	ShowLoadingView()
	HideLoadingView()
	AddHeader()
	AddFooter()
	RemoveFooter()
	ShowLoadingFooter()
	ShowErrorFooter()
	LoadMoreItems()
}

type TelevisionShowsView interface {
	ListView
	AddTelevisionShowsToAdapter(shows []model.TelevisionShow)
	SetTelevisionShowsPage(page *model.TelevisionShowsPage)
	OpenTelevisionShowDetails(show model.TelevisionShow)
}

type MoviesView interface {
	ListView
	AddMoviesToAdapter(movies []model.Movie)
	SetMoviesPage(page *model.MoviesPage)
	OpenMovieDetails(movie model.Movie)
}

type PersonsView interface {
	ListView
	AddPersonsToAdapter(persons []model.Person)
	SetPersonsPage(page *model.PersonsPage)
	OpenPersonDetails(person model.Person)
}

type PersonDetailsView interface {
	ShowPersonDetails(details *model.PersonDetails)
	ShowErrorView()
	OpenMovieDetails(movie model.Movie)
	OpenTelevisionShowDetails(show model.TelevisionShow)
	ShowToolbarTitle()
	HideToolbarTitle()
}
