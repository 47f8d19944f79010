package chat

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"marhaba/apperrors"
	"marhaba/logger"
	"marhaba/services/chat"
	"marhaba/store"
	appTypes "marhaba/types/app"
	"marhaba/utils"
)

const streamTimeout = 2 * time.Minute

type ChatController struct {
	assistant *chat.Assistant
	store     *store.Store
}

func NewChatController(assistant *chat.Assistant, st *store.Store) *ChatController {
	return &ChatController{assistant: assistant, store: st}
}

// Welcome returns the greeting and the conversation so far
func (cc *ChatController) Welcome(c *fiber.Ctx) error {
	lang := cc.store.GetState().Language
	return utils.Success(c, cc.assistant.Welcome(lang), fiber.Map{
		"history": cc.assistant.History(),
	})
}

type chunkEvent struct {
	Text string `json:"text"`
}

// Send streams the assistant reply as server-sent events: one "message"
// event per chunk followed by a "done" event
func (cc *ChatController) Send(c *fiber.Ctx) error {
	var req appTypes.ChatRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid chat message", err)
	}
	if len(req.Message) > 4000 {
		return utils.ErrorResponse(c, "Chat message too long", apperrors.NewValidationError("message must be at most 4000 characters"))
	}

	lang := cc.store.GetState().Language

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithTimeout(context.Background(), streamTimeout)
		defer cancel()

		for chunk := range cc.assistant.Send(ctx, lang, req.Message) {
			payload, _ := json.Marshal(chunkEvent{Text: chunk})
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", payload)
			if err := w.Flush(); err != nil {
				logger.Warning("Chat client disconnected")
				return
			}
		}
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
		w.Flush()
	})
	return nil
}
