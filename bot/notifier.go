package bot

import (
	"context"

	"github.com/rubickshop/rubick-cup/services"
	"github.com/rubickshop/rubick-cup/telegram"
)

// telegramNotifier адаптирует клиент Bot API под services.Notifier.
type telegramNotifier struct {
	api telegram.Client
}

func NewNotifier(api telegram.Client) services.Notifier {
	return &telegramNotifier{api: api}
}

func (n *telegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	return n.api.SendMessage(ctx, chatID, text, nil)
}

func (n *telegramNotifier) NotifyPhoto(ctx context.Context, chatID int64, photoPath, caption string) error {
	return n.api.SendPhoto(ctx, chatID, photoPath, caption)
}
