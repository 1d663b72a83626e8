package bot

import (
	"context"
	"time"

	"github.com/DanRulev/quizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/mock_bot.go -aux_files=github.com/DanRulev/quizbot.git/internal/bot=quiz.go

type ServiceI interface {
	QuizSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api  *tgbotapi.BotAPI
	bot  BotSender
	quiz *QuizT
	log  *zap.Logger
}

func NewTelegramAPI(botToken, env string, advanceDelay time.Duration, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		api.Debug = true
	} else {
		api.Debug = false
	}

	return &TelegramAPI{
		api:  api,
		bot:  api,
		quiz: NewQuizTAPI(api, cache, service, advanceDelay, log),
		log:  log,
	}, nil
}

// RegisterCommands publishes the command menu. A failure only costs the menu.
func (t *TelegramAPI) RegisterCommands() {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Main menu"},
		tgbotapi.BotCommand{Command: "quiz", Description: "Start a quiz"},
		tgbotapi.BotCommand{Command: "stats", Description: "Your results"},
		tgbotapi.BotCommand{Command: "help", Description: "Help"},
	)

	if _, err := t.bot.Request(cfg); err != nil {
		t.log.Warn("failed to register bot commands", zap.Error(err))
		return
	}
	t.log.Info("bot commands registered")
}

func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) (tgbotapi.Message, bool) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return tgbotapi.Message{}, false
	}

	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID), zap.Int("message_id", sentMsg.MessageID))
	}
	return sentMsg, true
}
