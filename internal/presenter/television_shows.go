package presenter

import (
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

type TelevisionShowsPresenter struct {
	view    TelevisionShowsView
	useCase domain.TelevisionShowsUseCase
	binding pageBinding[model.TelevisionShow]
}

func NewTelevisionShowsPresenter(view TelevisionShowsView, useCase domain.TelevisionShowsUseCase) *TelevisionShowsPresenter {
	return &TelevisionShowsPresenter{
		view:    view,
		useCase: useCase,
		binding: pageBinding[model.TelevisionShow]{
			view:     view,
			addItems: view.AddTelevisionShowsToAdapter,
			setPage:  view.SetTelevisionShowsPage,
		},
	}
}

func (p *TelevisionShowsPresenter) OnLoadPopularTelevisionShows(page int) {
	p.binding.beforeLoad(page)
	p.useCase.GetPopularTelevisionShows(page, p.binding.subscriber(page))
}

func (p *TelevisionShowsPresenter) OnTelevisionShowClick(show model.TelevisionShow) {
	p.view.OpenTelevisionShowDetails(show)
}

func (p *TelevisionShowsPresenter) OnScrollToEndOfList() {
	p.view.LoadMoreItems()
}

func (p *TelevisionShowsPresenter) OnDestroyView() {
	p.useCase.ClearSubscriptions()
}
