package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/repositories"
)

type MatchService interface {
	// ReportResult принимает результат от капитана. Проверки и их
	// порядок живут в BracketRepository; сервис добавляет уведомление
	// организатора и событие для дашборда.
	ReportResult(ctx context.Context, matchID int, winnerRaw string, reporterID int64) (*models.MatchResult, error)

	ListMatches() []models.Match
	ListResults() []models.MatchResult
}

type matchService struct {
	bracketRepo repositories.BracketRepository
	notifier    Notifier
	hub         *brackets.Hub
	organizerID int64
	logger      *slog.Logger
}

func NewMatchService(
	bracketRepo repositories.BracketRepository,
	notifier Notifier,
	hub *brackets.Hub,
	organizerID int64,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		bracketRepo: bracketRepo,
		notifier:    notifier,
		hub:         hub,
		organizerID: organizerID,
		logger:      logger,
	}
}

func (s *matchService) ReportResult(ctx context.Context, matchID int, winnerRaw string, reporterID int64) (*models.MatchResult, error) {
	result, err := s.bracketRepo.RecordResult(matchID, winnerRaw, reporterID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("match result recorded",
		slog.Int("match_id", result.MatchID),
		slog.String("winner", result.Winner),
		slog.Int64("reported_by", result.ReportedBy))

	text := fmt.Sprintf(
		"⚔️ Результат матча #%d:\n✅ Победитель: <b>%s</b>\n❌ Проигравший: <b>%s</b>",
		result.MatchID, titleCase(result.Winner), result.Loser,
	)
	if err := s.notifier.Notify(ctx, s.organizerID, text); err != nil {
		s.logger.Error("failed to notify organizer about match result",
			slog.Int("match_id", result.MatchID), slog.Any("error", err))
	}
	s.hub.BroadcastEvent(brackets.EventResultReported, result)

	return result, nil
}

func (s *matchService) ListMatches() []models.Match {
	return s.bracketRepo.Matches()
}

func (s *matchService) ListResults() []models.MatchResult {
	return s.bracketRepo.Results()
}

// titleCase поднимает первую букву каждого слова: победитель хранится в
// нижнем регистре, а в сообщениях показывается нарядно.
func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
