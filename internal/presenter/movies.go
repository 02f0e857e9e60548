package presenter

import (
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

type MoviesPresenter struct {
	view    MoviesView
	useCase domain.MoviesUseCase
	binding pageBinding[model.Movie]
}

func NewMoviesPresenter(view MoviesView, useCase domain.MoviesUseCase) *MoviesPresenter {
	return &MoviesPresenter{
		view:    view,
		useCase: useCase,
		binding: pageBinding[model.Movie]{
			view:     view,
			addItems: view.AddMoviesToAdapter,
			setPage:  view.SetMoviesPage,
		},
	}
}

func (p *MoviesPresenter) OnLoadPopularMovies(page int) {
	p.binding.beforeLoad(page)
	p.useCase.GetPopularMovies(page, p.binding.subscriber(page))
}

func (p *MoviesPresenter) OnMovieClick(movie model.Movie) {
	p.view.OpenMovieDetails(movie)
}

func (p *MoviesPresenter) OnScrollToEndOfList() {
	p.view.LoadMoreItems()
}

func (p *MoviesPresenter) OnDestroyView() {
	p.useCase.ClearSubscriptions()
}
