package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/repositories"
)

// RosterService ведёт двухшаговую анкету регистрации команды:
// awaiting_team_name → awaiting_players → коммит в реестр.
type RosterService interface {
	// StartRegistration открывает (или перезапускает) анкету. При
	// заполненной квоте сессия не создаётся.
	StartRegistration(chatID int64) error
	CancelRegistration(chatID int64) error
	ActiveSession(chatID int64) (*models.RegistrationSession, bool)

	SubmitTeamName(chatID int64, input string) error

	// SubmitPlayers валидирует пять строк заявки по порядку: число
	// строк, формат строки, числовые поля, глобальные коллизии, дубли
	// внутри заявки, подписка на канал. Любой отказ оставляет анкету на
	// том же шаге; подписка перепроверяется при каждой попытке.
	SubmitPlayers(ctx context.Context, chatID int64, input string) (*models.Team, error)

	ListTeams() []models.Team
	RosterCount() int
}

type rosterService struct {
	roster      repositories.RosterRepository
	sessions    repositories.SessionRepository
	subs        SubscriptionChecker
	notifier    Notifier
	hub         *brackets.Hub
	organizerID int64
	logger      *slog.Logger
}

func NewRosterService(
	roster repositories.RosterRepository,
	sessions repositories.SessionRepository,
	subs SubscriptionChecker,
	notifier Notifier,
	hub *brackets.Hub,
	organizerID int64,
	logger *slog.Logger,
) RosterService {
	return &rosterService{
		roster:      roster,
		sessions:    sessions,
		subs:        subs,
		notifier:    notifier,
		hub:         hub,
		organizerID: organizerID,
		logger:      logger,
	}
}

func (s *rosterService) StartRegistration(chatID int64) error {
	if s.roster.IsFull() {
		return repositories.ErrRegistrationClosed
	}
	s.sessions.Put(&models.RegistrationSession{
		ChatID:    chatID,
		Step:      models.StepAwaitingTeamName,
		StartedAt: time.Now(),
	})
	return nil
}

func (s *rosterService) CancelRegistration(chatID int64) error {
	if _, ok := s.sessions.Get(chatID); !ok {
		return ErrNoActiveSession
	}
	s.sessions.Delete(chatID)
	return nil
}

func (s *rosterService) ActiveSession(chatID int64) (*models.RegistrationSession, bool) {
	return s.sessions.Get(chatID)
}

func (s *rosterService) SubmitTeamName(chatID int64, input string) error {
	session, ok := s.sessions.Get(chatID)
	if !ok || session.Step != models.StepAwaitingTeamName {
		return ErrNoActiveSession
	}

	name := strings.TrimSpace(input)
	if name == "" {
		return ErrTeamNameEmpty
	}
	if s.roster.NameTaken(name) {
		return repositories.ErrTeamNameTaken
	}

	session.TeamName = name
	session.Step = models.StepAwaitingPlayers
	s.sessions.Put(session)
	return nil
}

func (s *rosterService) SubmitPlayers(ctx context.Context, chatID int64, input string) (*models.Team, error) {
	session, ok := s.sessions.Get(chatID)
	if !ok || session.Step != models.StepAwaitingPlayers {
		return nil, ErrNoActiveSession
	}

	players, err := s.parsePlayers(input)
	if err != nil {
		return nil, err
	}

	// Подписка проверяется последней и заново при каждой попытке:
	// проверка дешёвая и идемпотентная, а команда до неё не коммитится.
	subscribed, err := s.subs.IsSubscribed(ctx, chatID)
	if err != nil || !subscribed {
		return nil, ErrNotSubscribed
	}

	team, err := s.roster.RegisterTeam(session.TeamName, players, chatID)
	if err != nil {
		return nil, err
	}
	s.sessions.Delete(chatID)

	s.notifyOrganizer(ctx, team)
	s.hub.BroadcastEvent(brackets.EventTeamRegistered, team)
	return team, nil
}

func (s *rosterService) parsePlayers(input string) ([]models.Player, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) != models.TeamSize {
		return nil, ErrPlayerLineCount
	}

	players := make([]models.Player, 0, models.TeamSize)
	seenHandles := make(map[string]struct{}, models.TeamSize)
	seenGameIDs := make(map[string]struct{}, models.TeamSize)

	for i, line := range lines {
		lineNo := i + 1
		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, &PlayerLineError{Line: lineNo, Reason: ReasonBadLineFormat}
		}
		handle, gameID, ratingStr := parts[0], parts[1], parts[2]
		if !isDigits(gameID) || !isDigits(ratingStr) {
			return nil, &PlayerLineError{Line: lineNo, Reason: ReasonNonNumeric}
		}
		if s.roster.PlayerTaken(handle, gameID) {
			return nil, repositories.ErrPlayerTaken
		}
		if _, ok := seenHandles[handle]; ok {
			return nil, repositories.ErrDuplicateInTeam
		}
		if _, ok := seenGameIDs[gameID]; ok {
			return nil, repositories.ErrDuplicateInTeam
		}
		seenHandles[handle] = struct{}{}
		seenGameIDs[gameID] = struct{}{}

		rating, err := strconv.Atoi(ratingStr)
		if err != nil {
			return nil, &PlayerLineError{Line: lineNo, Reason: ReasonNonNumeric}
		}
		players = append(players, models.Player{Handle: handle, GameID: gameID, Rating: rating})
	}
	return players, nil
}

func (s *rosterService) ListTeams() []models.Team {
	return s.roster.ListTeams()
}

func (s *rosterService) RosterCount() int {
	return s.roster.Count()
}

func (s *rosterService) notifyOrganizer(ctx context.Context, team *models.Team) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔥 Новая команда: <b>%s</b>\n", team.Name)
	for _, p := range team.Players {
		fmt.Fprintf(&sb, "%s | %s\n", p.Handle, p.GameID)
	}
	if err := s.notifier.Notify(ctx, s.organizerID, sb.String()); err != nil {
		s.logger.Error("failed to notify organizer about new team",
			slog.String("team", team.Name), slog.Any("error", err))
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
