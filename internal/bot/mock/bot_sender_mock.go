package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBot records everything the bot sends. Each Send gets a new message id.
type MockBot struct {
	mu           sync.Mutex
	nextID       int
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
	SendErr      error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = append(m.SentMessages, c)
	if m.SendErr != nil {
		return tgbotapi.Message{}, m.SendErr
	}

	m.nextID++
	return tgbotapi.Message{MessageID: m.nextID, Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBot) Sent() []tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), m.SentMessages...)
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
	bot.Requests = nil
}
