package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// SentMessage records one Send call on a FakeContext
type SentMessage struct {
	What interface{}
	Opts []interface{}
}

// FakeContext is a minimal tele.Context for handler and middleware tests.
// Only the methods the handlers touch are implemented; anything else
// panics through the embedded nil interface.
type FakeContext struct {
	tele.Context

	TeleUser *tele.User
	TeleChat *tele.Chat
	Incoming string
	Sent     []SentMessage

	values map[string]interface{}
}

// NewFakeContext creates a context for one incoming text message
func NewFakeContext(userID, chatID int64, text string) *FakeContext {
	return &FakeContext{
		TeleUser: &tele.User{ID: userID},
		TeleChat: &tele.Chat{ID: chatID},
		Incoming: text,
		values:   make(map[string]interface{}),
	}
}

func (c *FakeContext) Sender() *tele.User { return c.TeleUser }

func (c *FakeContext) Chat() *tele.Chat { return c.TeleChat }

func (c *FakeContext) Text() string { return c.Incoming }

func (c *FakeContext) Get(key string) interface{} { return c.values[key] }

func (c *FakeContext) Set(key string, val interface{}) { c.values[key] = val }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, SentMessage{What: what, Opts: opts})
	return nil
}

// LastMarkup returns the reply markup of the most recent Send, or nil
func (c *FakeContext) LastMarkup() *tele.ReplyMarkup {
	if len(c.Sent) == 0 {
		return nil
	}
	for _, opt := range c.Sent[len(c.Sent)-1].Opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			return markup
		}
	}
	return nil
}
