package services

import "context"

// Notifier доставляет сообщения в конкретный чат. Отказ доставки одному
// получателю не должен прерывать рассылку остальным — эту дисциплину
// держат сами сервисы, а не реализация Notifier.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
	NotifyPhoto(ctx context.Context, chatID int64, photoPath, caption string) error
}

// SubscriptionChecker — проверка подписки на канал турнира.
type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID int64) (bool, error)
}
