package coach

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrEmptyMessage = errors.New("message is empty")

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Asker answers a free-text question. *Client implements it.
type Asker interface {
	Ask(ctx context.Context, question string, lang Language) string
}

// Delay waits before a bot reply is shown. Wait returns early with the
// context error when ctx ends.
type Delay interface {
	Wait(ctx context.Context) error
}

// TypingDelay waits a random duration in [Min, Max].
type TypingDelay struct {
	Min time.Duration
	Max time.Duration
}

func (d TypingDelay) Wait(ctx context.Context) error {
	wait := d.Min
	if d.Max > d.Min {
		wait += rand.N(d.Max - d.Min)
	}

	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Conversation is an append-only chat log safe for concurrent senders.
// Replies land in completion order, which may differ from send order.
type Conversation struct {
	asker Asker
	delay Delay
	now   func() time.Time

	mu       sync.Mutex
	messages []Message
	pending  int
}

func NewConversation(asker Asker, delay Delay) *Conversation {
	c := &Conversation{asker: asker, delay: delay, now: time.Now}

	start := c.now()
	for i, w := range welcomeMessages {
		c.messages = append(c.messages, Message{
			ID:        string(rune('1' + i)),
			Content:   w.content,
			IsBot:     w.isBot,
			Timestamp: start.Add(-w.ago),
			Language:  w.lang,
		})
	}

	return c
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Message(nil), c.messages...)
}

// Typing reports whether any reply is still being prepared.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending > 0
}

// Send records the user's text, asks the assistant and appends its answer
// after the typing delay. If ctx ends first the answer is dropped and the
// context error returned.
func (c *Conversation) Send(ctx context.Context, text string, lang Language) (Message, error) {
	return c.reply(ctx, text, lang, func(ctx context.Context) string {
		return c.asker.Ask(ctx, text, lang)
	})
}

// QuickAction is Send with a canned answer instead of a remote call.
func (c *Conversation) QuickAction(ctx context.Context, query string, lang Language) (Message, error) {
	return c.reply(ctx, query, lang, func(context.Context) string {
		return QuickReply(query, lang)
	})
}

func (c *Conversation) reply(ctx context.Context, text string, lang Language, answer func(context.Context) string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	c.append(Message{ID: newID(), Content: text, Timestamp: c.now(), Language: lang}, 1)

	resp := answer(ctx)

	if err := c.delay.Wait(ctx); err != nil {
		c.append(Message{}, -1)
		return Message{}, err
	}

	if err := ctx.Err(); err != nil {
		c.append(Message{}, -1)
		return Message{}, err
	}

	bot := Message{ID: newID(), Content: resp, IsBot: true, Timestamp: c.now(), Language: lang}
	c.append(bot, -1)

	return bot, nil
}

// append adds m, unless it is the zero Message, and adjusts the pending count.
func (c *Conversation) append(m Message, pendingDelta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.ID != "" {
		c.messages = append(c.messages, m)
	}

	c.pending += pendingDelta
}

func newID() string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		return time.Now().Format("20060102150405.000000000")
	}

	return id
}
