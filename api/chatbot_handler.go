package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vijayleo46/portfolio-backend/errs"
	"github.com/vijayleo46/portfolio-backend/services"
)

type chatbotHandler struct {
	responder Responder
	logger    zerolog.Logger
	chat      *services.ChatService
}

func newChatbotHandler(chat *services.ChatService) chatbotHandler {
	logger := log.With().Str("handlerName", "chatbotHandler").Logger()

	return chatbotHandler{
		responder: NewResponder(logger),
		logger:    logger,
		chat:      chat,
	}
}

type chatRequest struct {
	Text string `json:"text"`
}

type chatResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ask forwards one visitor message to the completion provider. Empty or
// missing text is rejected before anything is written; after that point the
// visitor turn is durable no matter what the provider does.
func (h chatbotHandler) ask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("text"))
			return
		}

		reply, err := h.chat.Answer(r.Context(), req.Text)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, chatResponse{
			Role:      reply.Role,
			Text:      reply.Text,
			Timestamp: reply.Timestamp,
		})
	}
}
