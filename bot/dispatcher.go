package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/services"
	"github.com/rubickshop/rubick-cup/telegram"
)

// Bot маршрутизирует обновления Telegram по закрытому набору команд и
// callback-действий. Свободный текст попадает в анкету регистрации,
// если она открыта, иначе игнорируется.
type Bot struct {
	api        telegram.Client
	roster     services.RosterService
	bracketSvc services.BracketService
	matches    services.MatchService

	organizerID int64
	channel     string
	logger      *slog.Logger
}

func New(
	api telegram.Client,
	roster services.RosterService,
	bracketSvc services.BracketService,
	matches services.MatchService,
	organizerID int64,
	channel string,
	logger *slog.Logger,
) *Bot {
	return &Bot{
		api:         api,
		roster:      roster,
		bracketSvc:  bracketSvc,
		matches:     matches,
		organizerID: organizerID,
		channel:     channel,
		logger:      logger,
	}
}

// Setup регистрирует список команд бота в Telegram.
func (b *Bot) Setup(ctx context.Context) error {
	return b.api.SetMyCommands(ctx, botCommands())
}

func (b *Bot) HandleUpdate(ctx context.Context, upd telegram.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.From != nil:
		b.handleMessage(ctx, upd.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *telegram.Message) {
	text := strings.TrimSpace(msg.Text)
	chatID := msg.Chat.ID

	if strings.HasPrefix(text, "/") {
		b.handleCommand(ctx, chatID, msg.From.ID, text)
		return
	}

	// Свободный текст — это шаг открытой анкеты.
	session, ok := b.roster.ActiveSession(chatID)
	if !ok {
		return
	}
	switch session.Step {
	case models.StepAwaitingTeamName:
		b.handleTeamNameInput(ctx, chatID, msg.Text)
	case models.StepAwaitingPlayers:
		b.handlePlayersInput(ctx, chatID, msg.Text)
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID, userID int64, text string) {
	fields := strings.Fields(text)
	command := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	switch command {
	case "start":
		b.reply(ctx, chatID, msgStart, mainMenu())
	case "help":
		b.reply(ctx, chatID, msgHelp, mainMenu())
	case "about":
		b.reply(ctx, chatID, msgAbout, mainMenu())
	case "register":
		b.handleRegister(ctx, chatID)
	case "cancel":
		b.handleCancel(ctx, chatID)
	case "report_result":
		b.handleReportResult(ctx, chatID, userID, fields[1:])
	case "generate_bracket":
		b.handleGenerateBracket(ctx, chatID, userID)
	default:
		b.reply(ctx, chatID, msgCommandList, mainMenu())
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	if err := b.api.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		b.logger.Error("failed to answer callback query", slog.Any("error", err))
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch cb.Data {
	case "register":
		b.handleRegister(ctx, chatID)
	case "show_commands":
		b.reply(ctx, chatID, msgCommandList, mainMenu())
	case "help":
		b.reply(ctx, chatID, msgHelp, mainMenu())
	case "about":
		b.reply(ctx, chatID, msgAbout, mainMenu())
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) {
	if err := b.api.SendMessage(ctx, chatID, text, markup); err != nil {
		b.logger.Error("failed to send reply", slog.Int64("chat_id", chatID), slog.Any("error", err))
	}
}
