package cache

import (
	"sync"

	"github.com/linguapersonal/linguabot.git/internal/service"
)

// Await is what the next plain text message from a user means.
type Await int

const (
	AwaitNone Await = iota
	AwaitCredentials
	AwaitCode
	AwaitPrompt
	AwaitAnswer
)

// Cache holds per-user conversation state: the open auth flow, the lesson
// session and what kind of input the bot is waiting for. Everything here is
// in-memory and lost on restart; only tokens survive in the store.
type Cache struct {
	mu         sync.Mutex
	auth       map[int64]*service.AuthFlow
	lessons    map[int64]*service.LessonSession
	await      map[int64]Await
	generating map[int64]bool
}

func NewCache() *Cache {
	return &Cache{
		auth:       make(map[int64]*service.AuthFlow),
		lessons:    make(map[int64]*service.LessonSession),
		await:      make(map[int64]Await),
		generating: make(map[int64]bool),
	}
}

// AuthFlow returns the user's open auth flow, creating one on first use.
func (c *Cache) AuthFlow(userID int64) *service.AuthFlow {
	c.mu.Lock()
	defer c.mu.Unlock()
	flow, exists := c.auth[userID]
	if !exists {
		flow = service.NewAuthFlow()
		c.auth[userID] = flow
	}
	return flow
}

// DeleteAuthFlow tears down the user's auth flow, stopping its cooldown
// timer.
func (c *Cache) DeleteAuthFlow(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if flow, exists := c.auth[userID]; exists {
		flow.Stop()
		delete(c.auth, userID)
	}
}

// LessonSession returns the user's lesson session, creating one on first
// use.
func (c *Cache) LessonSession(userID int64) *service.LessonSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	ls, exists := c.lessons[userID]
	if !exists {
		ls = service.NewLessonSession()
		c.lessons[userID] = ls
	}
	return ls
}

func (c *Cache) SetAwait(userID int64, a Await) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.await[userID] = a
}

func (c *Cache) GetAwait(userID int64) Await {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.await[userID]
}

// TryBeginGenerate marks the user as having a lesson request in flight.
// Returns false if one is already running.
func (c *Cache) TryBeginGenerate(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generating[userID] {
		return false
	}
	c.generating[userID] = true
	return true
}

func (c *Cache) EndGenerate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.generating, userID)
}
