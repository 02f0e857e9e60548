package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/model"
)

const (
	menuTelevisionShows = "📺 TV shows"
	menuMovies          = "🎬 Movies"
	menuPersons         = "👤 People"

	callbackTelevisionShowsMore  = "tv_more"
	callbackMoviesMore           = "movie_more"
	callbackPersonsMore          = "person_more"
	callbackTelevisionShowSelect = "tv_select"
	callbackMovieSelect          = "movie_select"
	callbackPersonSelect         = "person_select"
	callbackPersonTitle          = "person_title"
	callbackRetry                = "retry"
	callbackCancel               = "cancel"

	selectButtonsPerRow = 5
	maxCreditButtons    = 8
)

func createMainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuTelevisionShows),
			tgbotapi.NewKeyboardButton(menuMovies),
			tgbotapi.NewKeyboardButton(menuPersons),
		),
	)
}

func moreCallback(screen string) string {
	switch screen {
	case model.ScreenTelevisionShows:
		return callbackTelevisionShowsMore
	case model.ScreenMovies:
		return callbackMoviesMore
	default:
		return callbackPersonsMore
	}
}

func createMoreKeyboard(screen string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡ More", moreCallback(screen)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Close", callbackCancel),
		),
	)
}

// createRetryKeyboard retries page arg of a list screen, or loads person
// arg again on the person screen.
func createRetryKeyboard(screen string, arg int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retry", callbackRetry+":"+screen+":"+strconv.Itoa(arg)),
		),
	)
}

// createSelectKeyboard numbers the buttons from offset+1 to match the
// numbered description above them.
func createSelectKeyboard(prefix string, ids []int, offset int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, id := range ids {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(offset+i+1),
			prefix+":"+strconv.Itoa(id),
		))
		if len(row) == selectButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func createPersonKeyboard(details *model.PersonDetails) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, credit := range topCredits(details, maxCreditButtons) {
		prefix := callbackMovieSelect
		if credit.IsTelevisionShow() {
			prefix = callbackTelevisionShowSelect
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(formatCreditLabel(credit), prefix+":"+strconv.Itoa(credit.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📌 Pin name", callbackPersonTitle+":"+strconv.Itoa(details.Person.ID)+":1"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func createTitleKeyboard(personID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖ Unpin", callbackPersonTitle+":"+strconv.Itoa(personID)+":0"),
		),
	)
}

// topCredits returns up to limit distinct movie and TV credits, cast first.
func topCredits(details *model.PersonDetails, limit int) []model.PersonCredit {
	seen := make(map[string]bool)
	var result []model.PersonCredit
	for _, credits := range [][]model.PersonCredit{details.Cast, details.Crew} {
		for _, c := range credits {
			if len(result) == limit {
				return result
			}
			if !c.IsMovie() && !c.IsTelevisionShow() {
				continue
			}
			key := c.MediaType + ":" + strconv.Itoa(c.ID)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, c)
		}
	}
	return result
}
