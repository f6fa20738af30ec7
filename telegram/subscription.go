package telegram

import "context"

// ChannelSubscription проверяет членство пользователя в канале через
// getChatMember. Участником считаются статусы member, administrator и
// creator. Ошибка API трактуется как «не подписан» — так же вёл себя
// исходный бот.
type ChannelSubscription struct {
	api     Client
	channel string
}

func NewChannelSubscription(api Client, channel string) *ChannelSubscription {
	return &ChannelSubscription{api: api, channel: channel}
}

func (s *ChannelSubscription) IsSubscribed(ctx context.Context, userID int64) (bool, error) {
	member, err := s.api.GetChatMember(ctx, s.channel, userID)
	if err != nil {
		return false, nil
	}
	switch member.Status {
	case "member", "administrator", "creator":
		return true, nil
	default:
		return false, nil
	}
}
