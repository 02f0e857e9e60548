package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	logger := config.GetLogger()
	if query.Message == nil {
		logger.Warn().Str("data", query.Data).Msg("Received callback without message")
		return
	}

	callbackConfig := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.api.Request(callbackConfig); err != nil {
		logger.Error().Err(err).Msg("Error sending callback response")
	}

	data := query.Data
	parts := strings.Split(data, ":")
	chatID := query.Message.Chat.ID

	requiredParams := map[string]int{
		callbackTelevisionShowSelect: 2,
		callbackMovieSelect:          2,
		callbackPersonSelect:         2,
		callbackPersonTitle:          3,
		callbackRetry:                3,
	}

	if n, ok := requiredParams[parts[0]]; ok && len(parts) < n {
		logger.Warn().Str("data", data).Msg("Invalid callback format")
		return
	}

	ids := make([]int, 0, len(parts))
	for _, part := range parts[1:] {
		if id, err := strconv.Atoi(part); err == nil {
			ids = append(ids, id)
		}
	}

	switch parts[0] {
	case callbackCancel:
		b.handleCancel(chatID)
	case callbackTelevisionShowsMore:
		b.handleMore(chatID, model.ScreenTelevisionShows)
	case callbackMoviesMore:
		b.handleMore(chatID, model.ScreenMovies)
	case callbackPersonsMore:
		b.handleMore(chatID, model.ScreenPersons)
	case callbackTelevisionShowSelect:
		if len(ids) > 0 {
			b.handleTelevisionShowSelect(chatID, ids[0])
		}
	case callbackMovieSelect:
		if len(ids) > 0 {
			b.handleMovieSelect(chatID, ids[0])
		}
	case callbackPersonSelect:
		if len(ids) > 0 {
			b.handlePersonSelect(chatID, ids[0])
		}
	case callbackPersonTitle:
		if len(ids) > 1 {
			b.handlePersonTitle(chatID, ids[0], ids[1] == 1)
		}
	case callbackRetry:
		if len(ids) > 0 {
			b.handleRetry(chatID, parts[1], ids[0])
		}
	default:
		logger.Warn().Str("data", data).Msg("Unknown callback")
	}
}

func (b *Bot) handleCancel(chatID int64) {
	b.closeSessions(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := b.deps.State.DeleteState(ctx, chatID); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error deleting state")
	}

	b.sendText(chatID, "Closed. Pick another list whenever you like.", createMainMenuKeyboard())
}

// handleMore loads the next page of a list. After a restart the list is
// rebuilt from the saved browse state first.
func (b *Bot) handleMore(chatID int64, screen string) {
	s := b.session(chatID, screen)
	if s == nil {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		s = b.restoreSession(ctx, chatID, screen)
		cancel()
	}
	if s == nil {
		b.sendStateExpired(chatID)
		return
	}
	s.more()
}

func (b *Bot) handleRetry(chatID int64, screen string, arg int) {
	if screen == model.ScreenPersonDetails {
		b.openPersonDetails(chatID, arg)
		return
	}

	s := b.session(chatID, screen)
	if s == nil {
		s = b.newSession(chatID, screen, nil)
		if s == nil {
			b.sendStateExpired(chatID)
			return
		}
		b.replaceSession(chatID, s)
		arg = 1
	}
	if arg < 1 {
		arg = 1
	}
	s.load(arg)
}

func (b *Bot) handleTelevisionShowSelect(chatID int64, showID int) {
	for _, s := range b.chatSessions(chatID) {
		if s.openTelevisionShow != nil && s.openTelevisionShow(showID) {
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	show, err := b.deps.TelevisionShows.TelevisionShow(ctx, showID)
	if err != nil {
		b.sendText(chatID, "⚠️ "+apperrors.UserMessage(err), nil)
		return
	}
	b.sendTelevisionShowCard(chatID, *show)
}

func (b *Bot) handleMovieSelect(chatID int64, movieID int) {
	for _, s := range b.chatSessions(chatID) {
		if s.openMovie != nil && s.openMovie(movieID) {
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	movie, err := b.deps.Movies.Movie(ctx, movieID)
	if err != nil {
		b.sendText(chatID, "⚠️ "+apperrors.UserMessage(err), nil)
		return
	}
	b.sendMovieCard(chatID, *movie)
}

func (b *Bot) handlePersonSelect(chatID int64, personID int) {
	if s := b.session(chatID, model.ScreenPersons); s != nil && s.openPerson(personID) {
		return
	}
	b.openPersonDetails(chatID, personID)
}

func (b *Bot) handlePersonTitle(chatID int64, personID int, show bool) {
	s := b.session(chatID, model.ScreenPersonDetails)
	if s == nil || s.personID != personID {
		if show {
			b.sendStateExpired(chatID)
		}
		return
	}
	s.scroll(show)
}
