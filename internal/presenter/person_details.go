package presenter

import (
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

type PersonDetailsPresenter struct {
	view    PersonDetailsView
	useCase domain.PersonDetailsUseCase
}

func NewPersonDetailsPresenter(view PersonDetailsView, useCase domain.PersonDetailsUseCase) *PersonDetailsPresenter {
	return &PersonDetailsPresenter{view: view, useCase: useCase}
}

func (p *PersonDetailsPresenter) OnLoadPersonDetails(personID int) {
	p.useCase.GetPersonDetails(personID, domain.SubscriberFuncs[*model.PersonDetails]{
		Next: p.view.ShowPersonDetails,
		Error: func(error) {
			p.view.ShowErrorView()
		},
	})
}

func (p *PersonDetailsPresenter) OnMovieClick(movie model.Movie) {
	p.view.OpenMovieDetails(movie)
}

func (p *PersonDetailsPresenter) OnTelevisionShowClick(show model.TelevisionShow) {
	p.view.OpenTelevisionShowDetails(show)
}

// OnScrollChange shows the toolbar title once the header has scrolled out of sight.
func (p *PersonDetailsPresenter) OnScrollChange(isScrolledPastThreshold bool) {
	if isScrolledPastThreshold {
		p.view.ShowToolbarTitle()
		return
	}
	p.view.HideToolbarTitle()
}

func (p *PersonDetailsPresenter) OnDestroyView() {
	p.useCase.ClearSubscriptions()
}
