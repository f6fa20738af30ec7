package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/repositories"
	"github.com/rubickshop/rubick-cup/services"
)

func (b *Bot) handleRegister(ctx context.Context, chatID int64) {
	if err := b.roster.StartRegistration(chatID); err != nil {
		b.reply(ctx, chatID, b.textForError(err), nil)
		return
	}
	b.reply(ctx, chatID, msgAskTeamName, nil)
}

func (b *Bot) handleCancel(ctx context.Context, chatID int64) {
	if err := b.roster.CancelRegistration(chatID); err != nil {
		b.reply(ctx, chatID, msgNoSession, nil)
		return
	}
	b.reply(ctx, chatID, msgCancelled, mainMenu())
}

func (b *Bot) handleTeamNameInput(ctx context.Context, chatID int64, input string) {
	if err := b.roster.SubmitTeamName(chatID, input); err != nil {
		b.reply(ctx, chatID, b.textForError(err), nil)
		return
	}
	b.reply(ctx, chatID, msgAskPlayers, nil)
}

func (b *Bot) handlePlayersInput(ctx context.Context, chatID int64, input string) {
	team, err := b.roster.SubmitPlayers(ctx, chatID, input)
	if err != nil {
		b.reply(ctx, chatID, b.textForError(err), nil)
		return
	}
	b.reply(ctx, chatID, fmt.Sprintf("✅ Команда <b>%s</b> зарегистрирована!", team.Name), mainMenu())
}

func (b *Bot) handleReportResult(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) < 2 {
		b.reply(ctx, chatID, msgReportUsage, nil)
		return
	}
	matchID, err := strconv.Atoi(args[0])
	if err != nil {
		b.reply(ctx, chatID, msgMatchIDNumeric, nil)
		return
	}
	winner := strings.Join(args[1:], " ")

	result, err := b.matches.ReportResult(ctx, matchID, winner, userID)
	if err != nil {
		b.reply(ctx, chatID, b.textForError(err), nil)
		return
	}
	b.reply(ctx, chatID,
		fmt.Sprintf("✅ Результат принят! Победила команда <b>%s</b>.", titleCase(result.Winner)), nil)
}

// titleCase поднимает первую букву каждого слова имени команды.
func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func (b *Bot) handleGenerateBracket(ctx context.Context, chatID, userID int64) {
	if userID != b.organizerID {
		b.reply(ctx, chatID, msgOrganizerOnly, nil)
		return
	}
	if _, err := b.bracketSvc.GenerateBracket(ctx); err != nil {
		b.reply(ctx, chatID, b.textForError(err), nil)
		return
	}
	b.reply(ctx, chatID, msgBracketDone, nil)
}

// textForError переводит ошибку сервисного слоя в сообщение для чата.
// Каждая ошибка обрабатывается здесь и никуда дальше не распространяется.
func (b *Bot) textForError(err error) string {
	var lineErr *services.PlayerLineError
	if errors.As(err, &lineErr) {
		if lineErr.Reason == services.ReasonNonNumeric {
			return fmt.Sprintf("❌ DotaID и MMR должны быть числами. Строка %d", lineErr.Line)
		}
		return fmt.Sprintf("❌ Ошибка в строке %d. Формат: @user DotaID MMR", lineErr.Line)
	}

	switch {
	case errors.Is(err, repositories.ErrRegistrationClosed):
		return msgQuotaFull
	case errors.Is(err, services.ErrTeamNameEmpty), errors.Is(err, repositories.ErrTeamNameRequired):
		return msgNameEmpty
	case errors.Is(err, repositories.ErrTeamNameTaken):
		return msgNameTaken
	case errors.Is(err, services.ErrPlayerLineCount):
		return msgFiveLines
	case errors.Is(err, repositories.ErrPlayerTaken):
		return msgPlayerTaken
	case errors.Is(err, repositories.ErrDuplicateInTeam):
		return msgDuplicate
	case errors.Is(err, services.ErrNotSubscribed):
		return fmt.Sprintf("❌ Подпишись на канал %s для участия.", b.channel)
	case errors.Is(err, services.ErrNoActiveSession):
		return msgNoSession
	case errors.Is(err, brackets.ErrIncompleteRoster):
		return msgNeedFullRoster
	case errors.Is(err, repositories.ErrNoActiveTournament):
		return msgNoTournament
	case errors.Is(err, repositories.ErrMatchNotFound):
		return "❌ Матч не найден."
	case errors.Is(err, repositories.ErrWinnerNotInMatch):
		return msgWinnerNotHere
	case errors.Is(err, repositories.ErrResultAlreadyReported):
		return msgAlreadyDone
	case errors.Is(err, repositories.ErrNotMatchCaptain):
		return msgCaptainOnly
	default:
		b.logger.Error("unexpected error in bot handler", "error", err)
		return msgUnexpected
	}
}
