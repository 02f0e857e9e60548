package presenter

import (
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

type PersonsPresenter struct {
	view    PersonsView
	useCase domain.PersonsUseCase
	binding pageBinding[model.Person]
}

func NewPersonsPresenter(view PersonsView, useCase domain.PersonsUseCase) *PersonsPresenter {
	return &PersonsPresenter{
		view:    view,
		useCase: useCase,
		binding: pageBinding[model.Person]{
			view:     view,
			addItems: view.AddPersonsToAdapter,
			setPage:  view.SetPersonsPage,
		},
	}
}

func (p *PersonsPresenter) OnLoadPopularPersons(page int) {
	p.binding.beforeLoad(page)
	p.useCase.GetPopularPersons(page, p.binding.subscriber(page))
}

func (p *PersonsPresenter) OnPersonClick(person model.Person) {
	p.view.OpenPersonDetails(person)
}

func (p *PersonsPresenter) OnScrollToEndOfList() {
	p.view.LoadMoreItems()
}

func (p *PersonsPresenter) OnDestroyView() {
	p.useCase.ClearSubscriptions()
}
