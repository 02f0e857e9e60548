// Package console renders the presenter views as plain text, for the CLI.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/model"
)

// listView prints a paged list. Items go to out, loading and error notes go
// to status so the listing itself can be piped.
type listView[T any] struct {
	out    io.Writer
	status io.Writer
	title  string
	format func(item T) string

	// loadPage is set once the presenter exists.
	loadPage func(page int)

	mu         sync.Mutex
	errorText  string
	page       int
	isLastPage bool
	hasFooter  bool
	failed     bool
	shown      int
}

func newListView[T any](out, status io.Writer, title string, format func(T) string) *listView[T] {
	return &listView[T]{out: out, status: status, title: title, format: format}
}

func (v *listView[T]) ShowEmptyView() {
	fmt.Fprintln(v.out, "Nothing to show.")
}

func (v *listView[T]) HideEmptyView() {}

func (v *listView[T]) ShowErrorView() {
	v.mu.Lock()
	text := v.errorText
	v.failed = true
	v.mu.Unlock()
	if text == "" {
		text = apperrors.GenericErrorMessage
	}
	fmt.Fprintln(v.status, "error:", strings.ReplaceAll(text, "\n", " "))
}

func (v *listView[T]) HideErrorView() {}

func (v *listView[T]) SetErrorText(text string) {
	v.mu.Lock()
	v.errorText = text
	v.mu.Unlock()
}

func (v *listView[T]) ShowLoadingView() {
	fmt.Fprintln(v.status, "Loading...")
}

func (v *listView[T]) HideLoadingView() {}

func (v *listView[T]) AddHeader() {
	fmt.Fprintln(v.out, v.title)
	fmt.Fprintln(v.out, strings.Repeat("=", len([]rune(v.title))))
}

func (v *listView[T]) AddFooter() {
	v.mu.Lock()
	v.hasFooter = true
	v.mu.Unlock()
}

func (v *listView[T]) RemoveFooter() {
	v.mu.Lock()
	v.hasFooter = false
	v.mu.Unlock()
}

func (v *listView[T]) ShowLoadingFooter() {
	fmt.Fprintln(v.status, "Loading more...")
}

func (v *listView[T]) ShowErrorFooter() {
	v.mu.Lock()
	v.failed = true
	v.mu.Unlock()
	fmt.Fprintln(v.status, "error: couldn't load more results")
}

func (v *listView[T]) LoadMoreItems() {
	v.mu.Lock()
	next := v.page + 1
	last := v.isLastPage
	v.mu.Unlock()

	if last || v.loadPage == nil {
		return
	}
	v.loadPage(next)
}

func (v *listView[T]) addItems(items []T) {
	v.mu.Lock()
	offset := v.shown
	v.shown += len(items)
	v.mu.Unlock()

	for i, item := range items {
		fmt.Fprintf(v.out, "%3d. %s\n", offset+i+1, v.format(item))
	}
}

func (v *listView[T]) setPage(page *model.Page[T]) {
	v.mu.Lock()
	v.page = page.PageNumber
	v.isLastPage = page.IsLastPage
	v.mu.Unlock()
}

// HasMore reports whether the last page shown left a footer behind, i.e.
// another page can be loaded.
func (v *listView[T]) HasMore() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hasFooter && !v.isLastPage
}

// Failed reports whether any page failed to load.
func (v *listView[T]) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

// OnLoadMore sets what LoadMoreItems calls with the next page number.
func (v *listView[T]) OnLoadMore(load func(page int)) {
	v.loadPage = load
}

type TelevisionShowsView struct {
	*listView[model.TelevisionShow]
}

func NewTelevisionShowsView(out, status io.Writer) *TelevisionShowsView {
	return &TelevisionShowsView{newListView(out, status, "Popular TV shows", formatTelevisionShow)}
}

func (v *TelevisionShowsView) AddTelevisionShowsToAdapter(shows []model.TelevisionShow) {
	v.addItems(shows)
}

func (v *TelevisionShowsView) SetTelevisionShowsPage(page *model.TelevisionShowsPage) {
	v.setPage(page)
}

func (v *TelevisionShowsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	printTelevisionShow(v.out, show)
}

type MoviesView struct {
	*listView[model.Movie]
}

func NewMoviesView(out, status io.Writer) *MoviesView {
	return &MoviesView{newListView(out, status, "Popular movies", formatMovie)}
}

func (v *MoviesView) AddMoviesToAdapter(movies []model.Movie) {
	v.addItems(movies)
}

func (v *MoviesView) SetMoviesPage(page *model.MoviesPage) {
	v.setPage(page)
}

func (v *MoviesView) OpenMovieDetails(movie model.Movie) {
	printMovie(v.out, movie)
}

type PersonsView struct {
	*listView[model.Person]
}

func NewPersonsView(out, status io.Writer) *PersonsView {
	return &PersonsView{newListView(out, status, "Popular people", formatPerson)}
}

func (v *PersonsView) AddPersonsToAdapter(persons []model.Person) {
	v.addItems(persons)
}

func (v *PersonsView) SetPersonsPage(page *model.PersonsPage) {
	v.setPage(page)
}

func (v *PersonsView) OpenPersonDetails(person model.Person) {
	fmt.Fprintf(v.out, "%s (id %d)\n", person.Name, person.ID)
}

// PersonDetailsView prints a person and their credits. Once more than
// titleThreshold lines are out, the name has scrolled off a typical
// terminal and is repeated as a title line.
type PersonDetailsView struct {
	out            io.Writer
	status         io.Writer
	titleThreshold int

	mu         sync.Mutex
	details    *model.PersonDetails
	lines      int
	titleShown bool
	failed     bool
}

func NewPersonDetailsView(out, status io.Writer, titleThreshold int) *PersonDetailsView {
	return &PersonDetailsView{out: out, status: status, titleThreshold: titleThreshold}
}

func (v *PersonDetailsView) ShowPersonDetails(details *model.PersonDetails) {
	var sb strings.Builder
	writePersonDetails(&sb, details)
	text := sb.String()

	v.mu.Lock()
	v.details = details
	v.lines += strings.Count(text, "\n")
	v.mu.Unlock()

	fmt.Fprint(v.out, text)
}

func (v *PersonDetailsView) ShowErrorView() {
	v.mu.Lock()
	v.failed = true
	v.mu.Unlock()
	fmt.Fprintln(v.status, "error:", apperrors.GenericErrorMessage)
}

func (v *PersonDetailsView) OpenMovieDetails(movie model.Movie) {
	printMovie(v.out, movie)
}

func (v *PersonDetailsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	printTelevisionShow(v.out, show)
}

func (v *PersonDetailsView) ShowToolbarTitle() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.titleShown || v.details == nil {
		return
	}
	v.titleShown = true
	fmt.Fprintf(v.out, "-- %s --\n", v.details.Person.Name)
}

func (v *PersonDetailsView) HideToolbarTitle() {
	v.mu.Lock()
	v.titleShown = false
	v.mu.Unlock()
}

// ScrolledPastTitle reports whether the printed card is longer than the
// title threshold.
func (v *PersonDetailsView) ScrolledPastTitle() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lines > v.titleThreshold
}

func (v *PersonDetailsView) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}
