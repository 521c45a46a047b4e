// Package chat is the placeholder assistant. Replies are canned and arrive
// after a fixed delay with no cancellation path; history lives in memory
// only and starts with a greeting, like the original app.
package chat

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lifetrack/internal/domain"
	"lifetrack/internal/errors"
	"lifetrack/internal/id"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

const greeting = "Hai bestie! Aku di sini untuk bantuin kamu dengan apapun yang kamu butuhkan! Tanya aja ya~"

var cannedReplies = []string{
	"Maaf ya bestie, aku masih dalam tahap development! Tapi aku udah excited banget buat ngobrol sama kamu nanti!",
	"Hehe, aku belum pinter-pinter amat. Sabar ya, nanti aku upgrade!",
	"Catet dulu aja di task list kamu, nanti kita bahas bareng!",
}

// Assistant is the chat collaborator.
type Assistant struct {
	delay   time.Duration
	history []domain.Message
	nextIdx int
	now     func() time.Time
	sleep   func(time.Duration)
}

// New creates an assistant whose replies arrive after the given delay.
func New(delay time.Duration) *Assistant {
	return NewWithClock(delay, time.Now, time.Sleep)
}

// NewWithClock is New with injected time sources for tests.
func NewWithClock(delay time.Duration, now func() time.Time, sleep func(time.Duration)) *Assistant {
	a := &Assistant{
		delay: delay,
		now:   now,
		sleep: sleep,
	}
	a.history = append(a.history, domain.Message{
		ID:        id.New(),
		Text:      greeting,
		Sender:    domain.SenderAssistant,
		Timestamp: a.now(),
	})
	return a
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []domain.Message {
	out := make([]domain.Message, len(a.history))
	copy(out, a.history)
	return out
}

// Send appends the user's message. Empty or whitespace-only messages are
// rejected and leave the history untouched.
func (a *Assistant) Send(text string) (domain.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Message{}, errors.NewValidationError("message text is required", nil)
	}

	message := domain.Message{
		ID:        id.New(),
		Text:      trimmed,
		Sender:    domain.SenderUser,
		Timestamp: a.now(),
	}
	a.history = append(a.history, message)
	logger.Debug().Str("message_id", message.ID).Msg("user message queued")
	return message, nil
}

// AwaitReply blocks for the configured delay, then appends and returns the
// next canned reply.
func (a *Assistant) AwaitReply() domain.Message {
	a.sleep(a.delay)

	reply := domain.Message{
		ID:        id.New(),
		Text:      cannedReplies[a.nextIdx%len(cannedReplies)],
		Sender:    domain.SenderAssistant,
		Timestamp: a.now(),
	}
	a.nextIdx++
	a.history = append(a.history, reply)
	logger.Debug().Str("message_id", reply.ID).Msg("canned reply delivered")
	return reply
}
