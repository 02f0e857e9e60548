package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/model"
)

func (b *Bot) handleStartCommand(msg *tgbotapi.Message) {
	text := "Hi! I show what is popular on TMDB right now: TV shows, movies and people.\n\n" +
		"Pick a list:"
	b.sendText(msg.Chat.ID, text, createMainMenuKeyboard())
}

func (b *Bot) handleHelpCommand(msg *tgbotapi.Message) {
	text := "How to use the bot:\n\n" +
		"1. Pick a list with the buttons below\n" +
		"2. Tap a number to open a title or a person\n" +
		"3. Tap ➡ More to load the next page\n\n" +
		"Commands:\n" +
		"/tv - popular TV shows\n" +
		"/movies - popular movies\n" +
		"/people - popular people\n" +
		"/person &lt;id&gt; - a person by TMDB id\n" +
		"/help - show this help"
	b.sendText(msg.Chat.ID, text, createMainMenuKeyboard())
}

func (b *Bot) handlePersonCommand(msg *tgbotapi.Message) {
	personID, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || personID <= 0 {
		b.sendText(msg.Chat.ID, "Usage: /person &lt;id&gt;, for example /person 287", nil)
		return
	}
	b.openPersonDetails(msg.Chat.ID, personID)
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	switch msg.Text {
	case menuTelevisionShows:
		b.openScreen(msg.Chat.ID, model.ScreenTelevisionShows)
	case menuMovies:
		b.openScreen(msg.Chat.ID, model.ScreenMovies)
	case menuPersons:
		b.openScreen(msg.Chat.ID, model.ScreenPersons)
	default:
		b.sendText(msg.Chat.ID, "Please pick a list with the buttons below 👇", createMainMenuKeyboard())
	}
}
