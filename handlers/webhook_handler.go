package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rubickshop/rubick-cup/bot"
	"github.com/rubickshop/rubick-cup/telegram"
)

// WebhookHandler принимает обновления от Telegram. Каждое обновление
// обрабатывается в отдельной горутине: Telegram ждёт только 200 OK.
type WebhookHandler struct {
	bot    *bot.Bot
	token  string
	logger *slog.Logger
}

func NewWebhookHandler(b *bot.Bot, token string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{bot: b, token: token, logger: logger}
}

func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") != h.token {
		http.NotFound(w, r)
		return
	}

	var upd telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.logger.Error("failed to decode webhook update", slog.Any("error", err))
		badRequestResponse(w, err)
		return
	}

	go h.bot.HandleUpdate(context.Background(), upd)
	w.WriteHeader(http.StatusOK)
}
