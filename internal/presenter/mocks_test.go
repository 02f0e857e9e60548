package presenter

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
)

var listViewMethods = []string{
	"ShowEmptyView", "HideEmptyView", "ShowErrorView", "HideErrorView",
	"ShowLoadingView", "HideLoadingView", "AddHeader", "AddFooter", "RemoveFooter",
	"ShowLoadingFooter", "ShowErrorFooter", "LoadMoreItems",
}

// allow registers optional expectations so that verification happens afterwards,
// the same way a recording mock is verified.
func allow(m *mock.Mock, noArgs []string, oneArg []string) {
	for _, method := range noArgs {
		m.On(method).Maybe()
	}
	for _, method := range oneArg {
		m.On(method, mock.Anything).Maybe()
	}
}

func calledMethods(m *mock.Mock) []string {
	var names []string
	for _, call := range m.Calls {
		names = append(names, call.Method)
	}
	return names
}

type mockListView struct {
	mock.Mock
}

func (m *mockListView) ShowEmptyView()           { m.Called() }
func (m *mockListView) HideEmptyView()           { m.Called() }
func (m *mockListView) ShowErrorView()           { m.Called() }
func (m *mockListView) HideErrorView()           { m.Called() }
func (m *mockListView) SetErrorText(text string) { m.Called(text) }
func (m *mockListView) ShowLoadingView()         { m.Called() }
func (m *mockListView) HideLoadingView()         { m.Called() }
func (m *mockListView) AddHeader()               { m.Called() }
func (m *mockListView) AddFooter()               { m.Called() }
func (m *mockListView) RemoveFooter()            { m.Called() }
func (m *mockListView) ShowLoadingFooter()       { m.Called() }
func (m *mockListView) ShowErrorFooter()         { m.Called() }
func (m *mockListView) LoadMoreItems()           { m.Called() }

type mockTelevisionShowsView struct {
	mockListView
}

func newMockTelevisionShowsView() *mockTelevisionShowsView {
	v := &mockTelevisionShowsView{}
	allow(&v.Mock, listViewMethods, []string{"SetErrorText", "AddTelevisionShowsToAdapter", "SetTelevisionShowsPage", "OpenTelevisionShowDetails"})
	return v
}

func (m *mockTelevisionShowsView) AddTelevisionShowsToAdapter(shows []model.TelevisionShow) {
	m.Called(shows)
}

func (m *mockTelevisionShowsView) SetTelevisionShowsPage(page *model.TelevisionShowsPage) {
	m.Called(page)
}

func (m *mockTelevisionShowsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	m.Called(show)
}

type mockMoviesView struct {
	mockListView
}

func newMockMoviesView() *mockMoviesView {
	v := &mockMoviesView{}
	allow(&v.Mock, listViewMethods, []string{"SetErrorText", "AddMoviesToAdapter", "SetMoviesPage", "OpenMovieDetails"})
	return v
}

func (m *mockMoviesView) AddMoviesToAdapter(movies []model.Movie) { m.Called(movies) }
func (m *mockMoviesView) SetMoviesPage(page *model.MoviesPage)    { m.Called(page) }
func (m *mockMoviesView) OpenMovieDetails(movie model.Movie)      { m.Called(movie) }

type mockPersonsView struct {
	mockListView
}

func newMockPersonsView() *mockPersonsView {
	v := &mockPersonsView{}
	allow(&v.Mock, listViewMethods, []string{"SetErrorText", "AddPersonsToAdapter", "SetPersonsPage", "OpenPersonDetails"})
	return v
}

func (m *mockPersonsView) AddPersonsToAdapter(persons []model.Person) { m.Called(persons) }
func (m *mockPersonsView) SetPersonsPage(page *model.PersonsPage)     { m.Called(page) }
func (m *mockPersonsView) OpenPersonDetails(person model.Person)      { m.Called(person) }

type mockPersonDetailsView struct {
	mock.Mock
}

func newMockPersonDetailsView() *mockPersonDetailsView {
	v := &mockPersonDetailsView{}
	allow(&v.Mock,
		[]string{"ShowErrorView", "ShowToolbarTitle", "HideToolbarTitle"},
		[]string{"ShowPersonDetails", "OpenMovieDetails", "OpenTelevisionShowDetails"})
	return v
}

func (m *mockPersonDetailsView) ShowPersonDetails(details *model.PersonDetails) { m.Called(details) }
func (m *mockPersonDetailsView) ShowErrorView()                                { m.Called() }
func (m *mockPersonDetailsView) OpenMovieDetails(movie model.Movie)            { m.Called(movie) }
func (m *mockPersonDetailsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	m.Called(show)
}
func (m *mockPersonDetailsView) ShowToolbarTitle() { m.Called() }
func (m *mockPersonDetailsView) HideToolbarTitle() { m.Called() }

// Use case doubles record the subscriber so a test can complete the fetch.

type mockTelevisionShowsUseCase struct {
	mock.Mock
}

func newMockTelevisionShowsUseCase() *mockTelevisionShowsUseCase {
	u := &mockTelevisionShowsUseCase{}
	u.On("GetPopularTelevisionShows", mock.Anything, mock.Anything).Maybe()
	u.On("ClearSubscriptions").Maybe()
	return u
}

func (m *mockTelevisionShowsUseCase) GetPopularTelevisionShows(page int, sub domain.Subscriber[*model.TelevisionShowsPage]) {
	m.Called(page, sub)
}

func (m *mockTelevisionShowsUseCase) ClearSubscriptions() { m.Called() }

type mockMoviesUseCase struct {
	mock.Mock
}

func newMockMoviesUseCase() *mockMoviesUseCase {
	u := &mockMoviesUseCase{}
	u.On("GetPopularMovies", mock.Anything, mock.Anything).Maybe()
	u.On("ClearSubscriptions").Maybe()
	return u
}

func (m *mockMoviesUseCase) GetPopularMovies(page int, sub domain.Subscriber[*model.MoviesPage]) {
	m.Called(page, sub)
}

func (m *mockMoviesUseCase) ClearSubscriptions() { m.Called() }

type mockPersonsUseCase struct {
	mock.Mock
}

func newMockPersonsUseCase() *mockPersonsUseCase {
	u := &mockPersonsUseCase{}
	u.On("GetPopularPersons", mock.Anything, mock.Anything).Maybe()
	u.On("ClearSubscriptions").Maybe()
	return u
}

func (m *mockPersonsUseCase) GetPopularPersons(page int, sub domain.Subscriber[*model.PersonsPage]) {
	m.Called(page, sub)
}

func (m *mockPersonsUseCase) ClearSubscriptions() { m.Called() }

type mockPersonDetailsUseCase struct {
	mock.Mock
}

func newMockPersonDetailsUseCase() *mockPersonDetailsUseCase {
	u := &mockPersonDetailsUseCase{}
	u.On("GetPersonDetails", mock.Anything, mock.Anything).Maybe()
	u.On("ClearSubscriptions").Maybe()
	return u
}

func (m *mockPersonDetailsUseCase) GetPersonDetails(personID int, sub domain.Subscriber[*model.PersonDetails]) {
	m.Called(personID, sub)
}

func (m *mockPersonDetailsUseCase) ClearSubscriptions() { m.Called() }

// capturedSubscriber returns the subscriber passed to the single recorded call of method.
func capturedSubscriber[T any](t *testing.T, m *mock.Mock, method string) domain.Subscriber[T] {
	t.Helper()
	m.AssertNumberOfCalls(t, method, 1)
	for _, call := range m.Calls {
		if call.Method == method {
			sub, ok := call.Arguments.Get(1).(domain.Subscriber[T])
			require.True(t, ok, "second argument of %s is not a subscriber", method)
			return sub
		}
	}
	t.Fatalf("%s was not called", method)
	return nil
}
