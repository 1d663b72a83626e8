package cache

import (
	"sync"

	"github.com/DanRulev/quizbot.git/internal/quiz"
)

type Timer interface {
	Stop() bool
}

// Entry is the per-chat quiz state. Hold Lock while reading or changing its fields.
type Entry struct {
	mu sync.Mutex

	Session   *quiz.Session
	SessionID string
	MessageID int
	Pending   Timer
}

func (e *Entry) Lock()   { e.mu.Lock() }
func (e *Entry) Unlock() { e.mu.Unlock() }

// StopPending cancels a scheduled advance, if any.
func (e *Entry) StopPending() {
	if e.Pending != nil {
		e.Pending.Stop()
		e.Pending = nil
	}
}

type Cache struct {
	mu      sync.Mutex
	entries map[int64]*Entry
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[int64]*Entry),
	}
}

func (c *Cache) SetEntry(chatID int64, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[chatID] = entry
}

func (c *Cache) GetEntry(chatID int64) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, exists := c.entries[chatID]
	return entry, exists
}

// GetOrCreateEntry returns the chat's entry, storing the one built by create if there is none.
func (c *Cache) GetOrCreateEntry(chatID int64, create func() *Entry) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[chatID]; ok {
		return entry
	}
	entry := create()
	c.entries[chatID] = entry
	return entry
}

func (c *Cache) DeleteEntry(chatID int64) {
	c.mu.Lock()
	entry, ok := c.entries[chatID]
	delete(c.entries, chatID)
	c.mu.Unlock()

	if ok {
		entry.Lock()
		entry.StopPending()
		entry.Unlock()
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
