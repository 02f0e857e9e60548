package presenter

import (
	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

// pageBinding connects the generic paging flow to the screen specific view calls.
type pageBinding[T any] struct {
	view     ListView
	addItems func(items []T)
	setPage  func(page *model.Page[T])
}

// beforeLoad prepares the view for fetching pageNumber: a full screen loading
// state for the first page, a loading footer for the following ones.
func (b pageBinding[T]) beforeLoad(pageNumber int) {
	if pageNumber == 1 {
		b.view.HideEmptyView()
		b.view.HideErrorView()
		b.view.ShowLoadingView()
		return
	}
	b.view.ShowLoadingFooter()
}

// subscriber returns the callbacks for a fetch of pageNumber.
func (b pageBinding[T]) subscriber(pageNumber int) domain.Subscriber[*model.Page[T]] {
	return domain.SubscriberFuncs[*model.Page[T]]{
		Next: b.onPage,
		Error: func(err error) {
			b.onError(pageNumber, err)
		},
	}
}

func (b pageBinding[T]) onError(pageNumber int, err error) {
	if pageNumber == 1 {
		b.view.HideLoadingView()
		b.view.SetErrorText(apperrors.UserMessage(err))
		b.view.ShowErrorView()
		return
	}
	b.view.ShowErrorFooter()
}

func (b pageBinding[T]) onPage(page *model.Page[T]) {
	if page.IsFirstPage() {
		b.view.HideLoadingView()
		if page.IsEmpty() {
			b.view.ShowEmptyView()
		} else {
			b.view.AddHeader()
			b.addItems(page.Items)
			if !page.IsLastPage {
				b.view.AddFooter()
			}
		}
	} else {
		b.view.RemoveFooter()
		if !page.IsEmpty() {
			b.addItems(page.Items)
			if !page.IsLastPage {
				b.view.AddFooter()
			}
		}
	}
	b.setPage(page)
}
