package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

// listView renders a paged list screen as chat messages. Loading, empty and
// error states are single messages that are deleted again when hidden; the
// footer is the message carrying the "More" button.
type listView[T any] struct {
	bot    *Bot
	chatID int64
	screen string
	itemID func(T) int
	render func(items []T, offset int)

	// loadPage is set once the presenter exists.
	loadPage func(page int)

	mu           sync.Mutex
	errorText    string
	loadingMsgID int
	emptyMsgID   int
	errorMsgID   int
	footerMsgID  int
	pendingPage  int
	state        model.BrowseState
	items        map[int]T
	shown        int
}

func newListView[T any](b *Bot, chatID int64, screen string, state *model.BrowseState, itemID func(T) int, render func(items []T, offset int)) *listView[T] {
	v := &listView[T]{
		bot:    b,
		chatID: chatID,
		screen: screen,
		itemID: itemID,
		render: render,
		items:  make(map[int]T),
		state:  model.BrowseState{Screen: screen},
	}
	if state != nil {
		v.state = *state
		v.footerMsgID = state.FooterMessageID
	}
	return v
}

// load starts fetching page unless a fetch is already running or the page
// is already on screen.
func (v *listView[T]) load(page int) {
	v.mu.Lock()
	if v.pendingPage != 0 || page <= v.state.Page {
		v.mu.Unlock()
		return
	}
	v.pendingPage = page
	v.mu.Unlock()

	v.loadPage(page)
}

func (v *listView[T]) takeMessage(id *int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	msgID := *id
	*id = 0
	return msgID
}

func (v *listView[T]) ShowLoadingView() {
	msgID := v.bot.sendText(v.chatID, "⏳ Loading...", nil)
	v.mu.Lock()
	v.loadingMsgID = msgID
	v.mu.Unlock()
}

func (v *listView[T]) HideLoadingView() {
	v.bot.deleteMessage(v.chatID, v.takeMessage(&v.loadingMsgID))
}

func (v *listView[T]) ShowEmptyView() {
	msgID := v.bot.sendText(v.chatID, "Nothing to show here yet.", createMainMenuKeyboard())
	v.mu.Lock()
	v.emptyMsgID = msgID
	v.mu.Unlock()
}

func (v *listView[T]) HideEmptyView() {
	v.bot.deleteMessage(v.chatID, v.takeMessage(&v.emptyMsgID))
}

func (v *listView[T]) SetErrorText(text string) {
	v.mu.Lock()
	v.errorText = text
	v.mu.Unlock()
}

func (v *listView[T]) ShowErrorView() {
	v.mu.Lock()
	text := v.errorText
	v.mu.Unlock()
	if text == "" {
		text = apperrors.GenericErrorMessage
	}

	msgID := v.bot.sendText(v.chatID, "⚠️ "+text, createRetryKeyboard(v.screen, 1))
	v.mu.Lock()
	v.errorMsgID = msgID
	v.pendingPage = 0
	v.mu.Unlock()
}

func (v *listView[T]) HideErrorView() {
	v.bot.deleteMessage(v.chatID, v.takeMessage(&v.errorMsgID))
}

func (v *listView[T]) AddHeader() {
	v.bot.sendText(v.chatID, "<b>"+screenTitle(v.screen)+"</b>", nil)
}

func (v *listView[T]) AddFooter() {
	msgID := v.bot.sendText(v.chatID, "More results available", createMoreKeyboard(v.screen))
	v.mu.Lock()
	v.footerMsgID = msgID
	v.mu.Unlock()
}

func (v *listView[T]) RemoveFooter() {
	v.bot.deleteMessage(v.chatID, v.takeMessage(&v.footerMsgID))
}

// ShowLoadingFooter turns the footer into a loading note, which also takes
// the "More" button away while the page loads.
func (v *listView[T]) ShowLoadingFooter() {
	v.mu.Lock()
	footerMsgID := v.footerMsgID
	v.mu.Unlock()

	if footerMsgID == 0 {
		v.bot.sendChatAction(v.chatID, tgbotapi.ChatTyping)
		return
	}
	v.bot.editText(v.chatID, footerMsgID, "⏳ Loading more...", nil)
}

func (v *listView[T]) ShowErrorFooter() {
	v.mu.Lock()
	footerMsgID := v.footerMsgID
	nextPage := v.state.Page + 1
	v.pendingPage = 0
	v.mu.Unlock()

	text := "⚠️ Couldn't load more results."
	keyboard := createRetryKeyboard(v.screen, nextPage)
	if footerMsgID != 0 {
		v.bot.editText(v.chatID, footerMsgID, text, &keyboard)
		return
	}

	msgID := v.bot.sendText(v.chatID, text, keyboard)
	v.mu.Lock()
	v.footerMsgID = msgID
	v.mu.Unlock()
}

func (v *listView[T]) LoadMoreItems() {
	v.mu.Lock()
	state := v.state
	pending := v.pendingPage != 0
	v.mu.Unlock()

	if pending {
		return
	}
	if state.IsLastPage {
		v.bot.sendText(v.chatID, "That's all for now.", nil)
		return
	}
	v.load(state.Page + 1)
}

func (v *listView[T]) addItems(items []T) {
	v.mu.Lock()
	offset := v.shown
	v.shown += len(items)
	for _, item := range items {
		v.items[v.itemID(item)] = item
	}
	v.mu.Unlock()

	v.render(items, offset)
}

func (v *listView[T]) setPage(page *model.Page[T]) {
	v.mu.Lock()
	v.state.Page = page.PageNumber
	v.state.IsLastPage = page.IsLastPage
	v.state.FooterMessageID = v.footerMsgID
	v.pendingPage = 0
	state := v.state
	v.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := v.bot.deps.State.SaveState(ctx, v.chatID, state); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", v.chatID).Msg("Error saving state")
	}
}

func (v *listView[T]) item(id int) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	item, ok := v.items[id]
	return item, ok
}

type televisionShowsView struct {
	*listView[model.TelevisionShow]
}

func (v *televisionShowsView) AddTelevisionShowsToAdapter(shows []model.TelevisionShow) {
	v.addItems(shows)
}

func (v *televisionShowsView) SetTelevisionShowsPage(page *model.TelevisionShowsPage) {
	v.setPage(page)
}

func (v *televisionShowsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	v.bot.sendTelevisionShowCard(v.chatID, show)
}

type moviesView struct {
	*listView[model.Movie]
}

func (v *moviesView) AddMoviesToAdapter(movies []model.Movie) {
	v.addItems(movies)
}

func (v *moviesView) SetMoviesPage(page *model.MoviesPage) {
	v.setPage(page)
}

func (v *moviesView) OpenMovieDetails(movie model.Movie) {
	v.bot.sendMovieCard(v.chatID, movie)
}

type personsView struct {
	*listView[model.Person]
}

func (v *personsView) AddPersonsToAdapter(persons []model.Person) {
	v.addItems(persons)
}

func (v *personsView) SetPersonsPage(page *model.PersonsPage) {
	v.setPage(page)
}

func (v *personsView) OpenPersonDetails(person model.Person) {
	v.bot.openPersonDetails(v.chatID, person.ID)
}

// personDetailsView shows a person card. The "toolbar title" is a short
// message with the person's name that can be pinned under a long card.
type personDetailsView struct {
	bot      *Bot
	chatID   int64
	personID int

	mu         sync.Mutex
	details    *model.PersonDetails
	titleMsgID int
}

func newPersonDetailsView(b *Bot, chatID int64, personID int) *personDetailsView {
	return &personDetailsView{bot: b, chatID: chatID, personID: personID}
}

func (v *personDetailsView) ShowPersonDetails(details *model.PersonDetails) {
	v.mu.Lock()
	v.details = details
	v.mu.Unlock()

	v.bot.sendPersonCard(v.chatID, details)
}

func (v *personDetailsView) ShowErrorView() {
	v.bot.sendText(v.chatID, "⚠️ "+apperrors.GenericErrorMessage, createRetryKeyboard(model.ScreenPersonDetails, v.personID))
}

func (v *personDetailsView) OpenMovieDetails(movie model.Movie) {
	v.bot.sendMovieCard(v.chatID, movie)
}

func (v *personDetailsView) OpenTelevisionShowDetails(show model.TelevisionShow) {
	v.bot.sendTelevisionShowCard(v.chatID, show)
}

func (v *personDetailsView) ShowToolbarTitle() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.titleMsgID != 0 || v.details == nil {
		return
	}
	v.titleMsgID = v.bot.sendText(v.chatID, formatPersonTitle(v.details.Person), createTitleKeyboard(v.personID))
}

func (v *personDetailsView) HideToolbarTitle() {
	v.mu.Lock()
	msgID := v.titleMsgID
	v.titleMsgID = 0
	v.mu.Unlock()

	v.bot.deleteMessage(v.chatID, msgID)
}

func (v *personDetailsView) credit(mediaType string, id int) (model.PersonCredit, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.details == nil {
		return model.PersonCredit{}, false
	}
	for _, credits := range [][]model.PersonCredit{v.details.Cast, v.details.Crew} {
		for _, c := range credits {
			if c.MediaType == mediaType && c.ID == id {
				return c, true
			}
		}
	}
	return model.PersonCredit{}, false
}

func screenTitle(screen string) string {
	switch screen {
	case model.ScreenTelevisionShows:
		return "📺 Popular TV shows"
	case model.ScreenMovies:
		return "🎬 Popular movies"
	case model.ScreenPersons:
		return "👤 Popular people"
	default:
		return screen
	}
}
