package bot

import (
	"context"

	"moviehub-bot/internal/config"
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/model"
	"moviehub-bot/internal/presenter"
)

// session is one open screen of a chat: a presenter, its Telegram view and
// the use case it subscribes to. Each session owns its use case, so
// destroying it cancels only that screen's work.
type session struct {
	screen   string
	personID int

	load    func(page int)
	more    func()
	destroy func()
	wait    func()

	// open* report whether the id belongs to something the session shows.
	openTelevisionShow func(id int) bool
	openMovie          func(id int) bool
	openPerson         func(id int) bool
	scroll             func(pastThreshold bool)
}

func (b *Bot) newTelevisionShowsSession(chatID int64, state *model.BrowseState) *session {
	service := domain.NewTelevisionShowsService(b.deps.TelevisionShows)
	view := &televisionShowsView{newListView(b, chatID, model.ScreenTelevisionShows, state,
		func(show model.TelevisionShow) int { return show.ID },
		func(shows []model.TelevisionShow, offset int) { b.sendTelevisionShows(chatID, shows, offset) },
	)}
	p := presenter.NewTelevisionShowsPresenter(view, service)
	view.loadPage = p.OnLoadPopularTelevisionShows

	return &session{
		screen:  model.ScreenTelevisionShows,
		load:    view.load,
		more:    p.OnScrollToEndOfList,
		destroy: p.OnDestroyView,
		wait:    service.Wait,
		openTelevisionShow: func(id int) bool {
			show, ok := view.item(id)
			if ok {
				p.OnTelevisionShowClick(show)
			}
			return ok
		},
	}
}

func (b *Bot) newMoviesSession(chatID int64, state *model.BrowseState) *session {
	service := domain.NewMoviesService(b.deps.Movies)
	view := &moviesView{newListView(b, chatID, model.ScreenMovies, state,
		func(movie model.Movie) int { return movie.ID },
		func(movies []model.Movie, offset int) { b.sendMovies(chatID, movies, offset) },
	)}
	p := presenter.NewMoviesPresenter(view, service)
	view.loadPage = p.OnLoadPopularMovies

	return &session{
		screen:  model.ScreenMovies,
		load:    view.load,
		more:    p.OnScrollToEndOfList,
		destroy: p.OnDestroyView,
		wait:    service.Wait,
		openMovie: func(id int) bool {
			movie, ok := view.item(id)
			if ok {
				p.OnMovieClick(movie)
			}
			return ok
		},
	}
}

func (b *Bot) newPersonsSession(chatID int64, state *model.BrowseState) *session {
	service := domain.NewPersonsService(b.deps.Persons)
	view := &personsView{newListView(b, chatID, model.ScreenPersons, state,
		func(person model.Person) int { return person.ID },
		func(persons []model.Person, offset int) { b.sendPersons(chatID, persons, offset) },
	)}
	p := presenter.NewPersonsPresenter(view, service)
	view.loadPage = p.OnLoadPopularPersons

	return &session{
		screen:  model.ScreenPersons,
		load:    view.load,
		more:    p.OnScrollToEndOfList,
		destroy: p.OnDestroyView,
		wait:    service.Wait,
		openPerson: func(id int) bool {
			person, ok := view.item(id)
			if ok {
				p.OnPersonClick(person)
			}
			return ok
		},
	}
}

// newPersonDetailsSession loads nothing by itself; load takes the person id.
func (b *Bot) newPersonDetailsSession(chatID int64, personID int) *session {
	service := domain.NewPersonDetailsService(b.deps.Persons)
	view := newPersonDetailsView(b, chatID, personID)
	p := presenter.NewPersonDetailsPresenter(view, service)

	return &session{
		screen:   model.ScreenPersonDetails,
		personID: personID,
		load:     p.OnLoadPersonDetails,
		more:     func() {},
		destroy:  p.OnDestroyView,
		wait:     service.Wait,
		openTelevisionShow: func(id int) bool {
			credit, ok := view.credit(model.MediaTypeTelevisionShow, id)
			if ok {
				p.OnTelevisionShowClick(credit.TelevisionShow())
			}
			return ok
		},
		openMovie: func(id int) bool {
			credit, ok := view.credit(model.MediaTypeMovie, id)
			if ok {
				p.OnMovieClick(credit.Movie())
			}
			return ok
		},
		scroll: p.OnScrollChange,
	}
}

func (b *Bot) newSession(chatID int64, screen string, state *model.BrowseState) *session {
	switch screen {
	case model.ScreenTelevisionShows:
		return b.newTelevisionShowsSession(chatID, state)
	case model.ScreenMovies:
		return b.newMoviesSession(chatID, state)
	case model.ScreenPersons:
		return b.newPersonsSession(chatID, state)
	default:
		return nil
	}
}

// replaceSession installs s as the chat's session for its screen and
// destroys the one it replaces. Must not be called from a subscriber
// callback: destroying waits for the old session's in-flight work.
func (b *Bot) replaceSession(chatID int64, s *session) {
	b.mu.Lock()
	screens, ok := b.sessions[chatID]
	if !ok {
		screens = make(map[string]*session)
		b.sessions[chatID] = screens
	}
	old := screens[s.screen]
	screens[s.screen] = s
	b.mu.Unlock()

	if old != nil {
		old.destroy()
	}
}

func (b *Bot) session(chatID int64, screen string) *session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[chatID][screen]
}

// chatSessions returns the chat's sessions, the person screen first so
// credit buttons resolve against the card the user is looking at.
func (b *Bot) chatSessions(chatID int64) []*session {
	b.mu.Lock()
	defer b.mu.Unlock()

	screens := b.sessions[chatID]
	result := make([]*session, 0, len(screens))
	if s, ok := screens[model.ScreenPersonDetails]; ok {
		result = append(result, s)
	}
	for screen, s := range screens {
		if screen != model.ScreenPersonDetails {
			result = append(result, s)
		}
	}
	return result
}

func (b *Bot) closeSessions(chatID int64) {
	b.mu.Lock()
	screens := b.sessions[chatID]
	delete(b.sessions, chatID)
	b.mu.Unlock()

	for _, s := range screens {
		s.destroy()
	}
}

func (b *Bot) closeAllSessions() {
	b.mu.Lock()
	chats := make([]int64, 0, len(b.sessions))
	for chatID := range b.sessions {
		chats = append(chats, chatID)
	}
	b.mu.Unlock()

	for _, chatID := range chats {
		b.closeSessions(chatID)
	}
}

func (b *Bot) openScreen(chatID int64, screen string) {
	s := b.newSession(chatID, screen, nil)
	if s == nil {
		return
	}
	b.replaceSession(chatID, s)
	s.load(1)
}

func (b *Bot) openPersonDetails(chatID int64, personID int) {
	s := b.newPersonDetailsSession(chatID, personID)
	b.replaceSession(chatID, s)
	s.load(personID)
}

// restoreSession rebuilds a list session from the persisted browse state,
// or returns nil when the chat was last looking at something else.
func (b *Bot) restoreSession(ctx context.Context, chatID int64, screen string) *session {
	logger := config.GetLogger()

	state, err := b.deps.State.GetState(ctx, chatID)
	if err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error getting state")
		return nil
	}
	if state == nil || state.Screen != screen {
		return nil
	}

	s := b.newSession(chatID, screen, state)
	if s == nil {
		return nil
	}
	b.replaceSession(chatID, s)
	logger.Debug().Int64("chat_id", chatID).Str("screen", screen).Int("page", state.Page).Msg("Session restored")
	return s
}
