// Package chat is the travel assistant. Replies arrive as a lazy sequence of
// text chunks; a failed exchange yields one fallback message instead.
package chat

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"

	"marhaba/i18n"
	"marhaba/logger"
	"marhaba/store"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Streamer sends a conversation to a language model and streams the reply
type Streamer interface {
	Stream(ctx context.Context, systemInstruction string, history []Turn) iter.Seq2[string, error]
}

const persona = `You are Marhaba AI, an expert virtual guide for the "Marhaba - Desert Tourism" platform in Algeria.

Your role is to:
1. Enthusiastically assist tourists in planning trips to the Algerian Sahara (Tassili n'Ajjer, Hoggar, Taghit, Ghardaia, etc.).
2. Provide cultural insights, travel tips (best season, packing, transport), and historical facts.
3. Help users understand the types of offers available: Tours (expeditions), Hotels, and Guesthouses.
4. If a user wants to book something, guide them to navigate to the "Offers" page in the app, but do not pretend to process the transaction yourself.
5. Keep your tone warm, welcoming, and professional.
6. Current App Language: %s. Adapt your response language to match the user's input or the app context.
7. Use emojis occasionally to make the conversation engaging 🏜️🐪✨.

Strictly adhere to safety guidelines and avoid sensitive political topics. Focus on tourism and culture.`

// SystemInstruction is the persona prompt for the given app language
func SystemInstruction(lang store.Language) string {
	return fmt.Sprintf(persona, i18n.LanguageName(lang))
}

// Assistant keeps one conversation. Changing the app language starts a new
// conversation.
type Assistant struct {
	streamer Streamer

	mu       sync.Mutex
	language store.Language
	history  []Turn
}

// NewAssistant builds an assistant; a nil streamer makes every reply the
// fallback message
func NewAssistant(streamer Streamer) *Assistant {
	return &Assistant{streamer: streamer}
}

// Welcome returns the greeting shown when the chat opens
func (a *Assistant) Welcome(lang store.Language) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.switchLanguage(lang)
	return i18n.T("chatWelcome", lang)
}

// History returns a copy of the current conversation
func (a *Assistant) History() []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Turn, len(a.history))
	copy(out, a.history)
	return out
}

// Send streams the reply to message. The returned sequence can be ranged
// over once. The user turn and the reply join the history together when the
// stream ends; a failed or never consumed exchange leaves no trace.
func (a *Assistant) Send(ctx context.Context, lang store.Language, message string) iter.Seq[string] {
	turn := Turn{Role: RoleUser, Text: strings.TrimSpace(message)}
	fallback := i18n.T("chatError", lang)
	var once sync.Once

	return func(yield func(string) bool) {
		started := false
		once.Do(func() { started = true })
		if !started {
			return
		}

		history := a.conversation(lang, turn)
		if a.streamer == nil {
			yield(fallback)
			return
		}

		var reply strings.Builder
		for chunk, err := range a.streamer.Stream(ctx, SystemInstruction(lang), history) {
			if err != nil {
				logger.Error("Chat stream failed", err)
				yield(fallback)
				return
			}
			reply.WriteString(chunk)
			if !yield(chunk) {
				break
			}
		}
		a.remember(lang, turn, reply.String())
	}
}

func (a *Assistant) switchLanguage(lang store.Language) {
	if a.language != lang {
		a.language = lang
		a.history = nil
	}
}

// conversation returns the history in lang followed by the pending turn
func (a *Assistant) conversation(lang store.Language, turn Turn) []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.switchLanguage(lang)
	history := make([]Turn, len(a.history), len(a.history)+1)
	copy(history, a.history)
	return append(history, turn)
}

// remember records a finished exchange unless the conversation switched
// language while it streamed
func (a *Assistant) remember(lang store.Language, turn Turn, reply string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.language != lang {
		return
	}
	a.history = append(a.history, turn, Turn{Role: RoleModel, Text: reply})
}
