package bot

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviehub-bot/internal/config"
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/metrics"
	"moviehub-bot/internal/model"
)

const (
	telegramCaptionLimit = 1024
	telegramMessageLimit = 4096
	mediaGroupLimit      = 10
	requestTimeout       = 15 * time.Second
)

// Sender is the part of the Telegram API the bot talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

// StateStore persists the browse state of each chat.
type StateStore interface {
	SaveState(ctx context.Context, chatID int64, state model.BrowseState) error
	GetState(ctx context.Context, chatID int64) (*model.BrowseState, error)
	DeleteState(ctx context.Context, chatID int64) error
}

type TelevisionShowsSource interface {
	domain.TelevisionShowsRepository
	TelevisionShow(ctx context.Context, showID int) (*model.TelevisionShow, error)
}

type MoviesSource interface {
	domain.MoviesRepository
	Movie(ctx context.Context, movieID int) (*model.Movie, error)
}

type Dependencies struct {
	TelevisionShows TelevisionShowsSource
	Movies          MoviesSource
	Persons         domain.PersonsRepository
	State           StateStore
	Posters         *PosterCache
	// ImageURL turns a TMDB image path into a downloadable URL.
	ImageURL func(path, size string) string
}

type Bot struct {
	botAPI *tgbotapi.BotAPI
	api    Sender
	deps   Dependencies

	mu       sync.Mutex
	sessions map[int64]map[string]*session

	stopChan chan struct{}  // Channel to signal stopping
	wg       sync.WaitGroup // WaitGroup for graceful shutdown
}

func NewBot(token string, deps Dependencies) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	b := newBot(botAPI, deps)
	b.botAPI = botAPI
	return b, nil
}

func newBot(api Sender, deps Dependencies) *Bot {
	if deps.ImageURL == nil {
		deps.ImageURL = func(string, string) string { return "" }
	}
	return &Bot{
		api:      api,
		deps:     deps,
		sessions: make(map[int64]map[string]*session),
		stopChan: make(chan struct{}),
	}
}

func (b *Bot) Start() {
	logger := config.GetLogger()
	logger.Info().Str("username", b.botAPI.Self.UserName).Msg("Authorized on account")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	b.wg.Add(1)
	defer b.wg.Done()

	for {
		select {
		case <-b.stopChan:
			logger.Info().Msg("Stopping bot update processing")
			return
		case update, ok := <-updates:
			if !ok {
				logger.Info().Msg("Updates channel closed")
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		metrics.BotUpdatesTotal.WithLabelValues("callback").Inc()
		b.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	if !update.Message.IsCommand() {
		metrics.BotUpdatesTotal.WithLabelValues("message").Inc()
		b.handleMessage(update.Message)
		return
	}

	metrics.BotUpdatesTotal.WithLabelValues("command").Inc()
	switch update.Message.Command() {
	case "start":
		b.handleStartCommand(update.Message)
	case "help":
		b.handleHelpCommand(update.Message)
	case "tv":
		b.openScreen(update.Message.Chat.ID, model.ScreenTelevisionShows)
	case "movies":
		b.openScreen(update.Message.Chat.ID, model.ScreenMovies)
	case "people":
		b.openScreen(update.Message.Chat.ID, model.ScreenPersons)
	case "person":
		b.handlePersonCommand(update.Message)
	default:
		b.handleHelpCommand(update.Message)
	}
}

func (b *Bot) Stop() {
	logger := config.GetLogger()
	logger.Info().Msg("Initiating bot shutdown...")
	close(b.stopChan) // Signal to stop processing updates
	b.wg.Wait()       // Wait for all goroutines to finish

	if b.botAPI != nil {
		b.botAPI.StopReceivingUpdates()
	}

	b.closeAllSessions()
	logger.Info().Msg("Bot shutdown complete")
}
