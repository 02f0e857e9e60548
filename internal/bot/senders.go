package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/api"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

// posterCard is one entry of a poster media group.
type posterCard struct {
	url     string
	caption string
}

// sendText sends an HTML message and returns its id, or 0 when sending failed.
func (b *Bot) sendText(chatID int64, text string, markup interface{}) int {
	msg := tgbotapi.NewMessage(chatID, truncate(text, telegramMessageLimit))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	sent, err := b.api.Send(msg)
	if err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error sending message")
		return 0
	}
	return sent.MessageID
}

func (b *Bot) editText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = markup

	if _, err := b.api.Request(edit); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("Error editing message")
	}
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Error deleting message")
	}
}

func (b *Bot) sendChatAction(chatID int64, action string) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("action", action).Msg("Error sending chat action")
	}
}

func (b *Bot) sendStateExpired(chatID int64) {
	b.sendText(chatID, "This list has expired. Please pick a list from the menu again.", createMainMenuKeyboard())
}

func (b *Bot) sendTelevisionShows(chatID int64, shows []model.TelevisionShow, offset int) {
	cards := make([]posterCard, len(shows))
	lines := make([]string, len(shows))
	ids := make([]int, len(shows))
	for i, show := range shows {
		cards[i] = posterCard{
			url:     b.deps.ImageURL(show.PosterPath, api.PosterSize),
			caption: formatTelevisionShowCaption(show),
		}
		lines[i] = fmt.Sprintf("%d. %s", offset+i+1, formatTelevisionShowDescription(show))
		ids[i] = show.ID
	}

	b.sendPosters(chatID, cards)
	b.sendDescription(chatID, lines, createSelectKeyboard(callbackTelevisionShowSelect, ids, offset))
}

func (b *Bot) sendMovies(chatID int64, movies []model.Movie, offset int) {
	cards := make([]posterCard, len(movies))
	lines := make([]string, len(movies))
	ids := make([]int, len(movies))
	for i, movie := range movies {
		cards[i] = posterCard{
			url:     b.deps.ImageURL(movie.PosterPath, api.PosterSize),
			caption: formatMovieCaption(movie),
		}
		lines[i] = fmt.Sprintf("%d. %s", offset+i+1, formatMovieDescription(movie))
		ids[i] = movie.ID
	}

	b.sendPosters(chatID, cards)
	b.sendDescription(chatID, lines, createSelectKeyboard(callbackMovieSelect, ids, offset))
}

func (b *Bot) sendPersons(chatID int64, persons []model.Person, offset int) {
	lines := make([]string, len(persons))
	ids := make([]int, len(persons))
	for i, person := range persons {
		lines[i] = fmt.Sprintf("%d. %s", offset+i+1, formatPersonDescription(person))
		ids[i] = person.ID
	}

	b.sendDescription(chatID, lines, createSelectKeyboard(callbackPersonSelect, ids, offset))
}

// sendPosters sends cards as media groups of at most ten photos, falling
// back to one photo per card when a group is rejected.
func (b *Bot) sendPosters(chatID int64, cards []posterCard) {
	if len(cards) == 0 || b.deps.Posters == nil {
		return
	}

	start := time.Now()
	logger := config.GetLogger()
	defer func() {
		logger.Debug().
			Float64("duration", time.Since(start).Seconds()).
			Int("posters", len(cards)).
			Msg("sendPosters executed")
	}()

	b.sendChatAction(chatID, tgbotapi.ChatUploadPhoto)

	urls := make([]string, len(cards))
	for i, card := range cards {
		urls[i] = card.url
	}
	posters := b.deps.Posters.LoadAll(urls)

	for from := 0; from < len(cards); from += mediaGroupLimit {
		to := min(from+mediaGroupLimit, len(cards))
		b.sendMediaGroupOrFallback(chatID, cards[from:to], posters[from:to])
	}
}

func (b *Bot) sendMediaGroupOrFallback(chatID int64, cards []posterCard, posters []tgbotapi.RequestFileData) {
	mediaGroup := make([]interface{}, len(cards))
	for i, card := range cards {
		photo := tgbotapi.NewInputMediaPhoto(posters[i])
		photo.Caption = card.caption
		mediaGroup[i] = photo
	}

	if len(mediaGroup) > 1 {
		_, err := b.api.SendMediaGroup(tgbotapi.MediaGroupConfig{
			ChatID: chatID,
			Media:  mediaGroup,
		})
		if err == nil {
			return
		}
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("SendMediaGroup error")
	}

	for i, card := range cards {
		b.sendPhoto(chatID, posters[i], card.caption, nil)
	}
}

func (b *Bot) sendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string, markup interface{}) {
	photoMsg := tgbotapi.NewPhoto(chatID, photo)
	photoMsg.Caption = caption
	if markup != nil {
		photoMsg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(photoMsg); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send photo")
	}
}

func (b *Bot) sendDescription(chatID int64, lines []string, keyboard tgbotapi.InlineKeyboardMarkup) {
	b.sendChatAction(chatID, tgbotapi.ChatTyping)
	b.sendText(chatID, strings.Join(lines, "\n"), keyboard)
}

func (b *Bot) poster(path, size string) tgbotapi.RequestFileData {
	url := b.deps.ImageURL(path, size)
	if b.deps.Posters == nil {
		if url == "" {
			return nil
		}
		return tgbotapi.FileURL(url)
	}
	return b.deps.Posters.Get(url)
}

func (b *Bot) sendTelevisionShowCard(chatID int64, show model.TelevisionShow) {
	b.sendCard(chatID, b.poster(show.PosterPath, api.PosterSize), formatTelevisionShowCard(show), nil)
}

func (b *Bot) sendMovieCard(chatID int64, movie model.Movie) {
	b.sendCard(chatID, b.poster(movie.PosterPath, api.PosterSize), formatMovieCard(movie), nil)
}

func (b *Bot) sendPersonCard(chatID int64, details *model.PersonDetails) {
	b.sendCard(chatID, b.poster(details.Person.ProfilePath, api.ProfileSize),
		formatPersonCaption(details.Person), createPersonKeyboard(details))
}

// sendCard sends an HTML photo card, or a plain message when there is no photo.
func (b *Bot) sendCard(chatID int64, photo tgbotapi.RequestFileData, caption string, markup interface{}) {
	if photo == nil {
		b.sendText(chatID, caption, markup)
		return
	}

	photoMsg := tgbotapi.NewPhoto(chatID, photo)
	photoMsg.Caption = caption
	photoMsg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		photoMsg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(photoMsg); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send card")
	}
}
