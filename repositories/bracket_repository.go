package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/rubickshop/rubick-cup/models"
)

// BracketRepository хранит активную сетку и результаты матчей.
// Повторный Seed заменяет сетку и сбрасывает всю историю результатов —
// архивирования нет, прогрессии раундов нет.
type BracketRepository interface {
	Seed(matches []models.Match)
	Active() bool
	Matches() []models.Match
	Get(matchID int) (*models.Match, bool)

	// RecordResult применяет проверки строго по порядку: наличие
	// турнира, наличие матча, победитель из пары (без учёта регистра),
	// повторная отправка, авторизация капитана. Порядок определяет,
	// какую ошибку получит некорректный поздний запрос.
	RecordResult(matchID int, winnerRaw string, reporterID int64) (*models.MatchResult, error)

	Results() []models.MatchResult
}

type inMemoryBracketRepository struct {
	mu      sync.Mutex
	matches []models.Match
	results map[int]models.MatchResult
}

func NewInMemoryBracketRepository() BracketRepository {
	return &inMemoryBracketRepository{}
}

func (r *inMemoryBracketRepository) Seed(matches []models.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = make([]models.Match, len(matches))
	copy(r.matches, matches)
	r.results = make(map[int]models.MatchResult)
}

func (r *inMemoryBracketRepository) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matches != nil
}

func (r *inMemoryBracketRepository) Matches() []models.Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Match, len(r.matches))
	copy(out, r.matches)
	return out
}

func (r *inMemoryBracketRepository) Get(matchID int) (*models.Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == matchID {
			return &m, true
		}
	}
	return nil, false
}

func (r *inMemoryBracketRepository) RecordResult(matchID int, winnerRaw string, reporterID int64) (*models.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.matches == nil {
		return nil, ErrNoActiveTournament
	}

	var match *models.Match
	for i := range r.matches {
		if r.matches[i].ID == matchID {
			match = &r.matches[i]
			break
		}
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}

	winner := strings.ToLower(strings.TrimSpace(winnerRaw))
	nameA := strings.ToLower(match.TeamA.Name)
	nameB := strings.ToLower(match.TeamB.Name)
	if winner != nameA && winner != nameB {
		return nil, ErrWinnerNotInMatch
	}

	if _, ok := r.results[matchID]; ok {
		return nil, ErrResultAlreadyReported
	}

	if reporterID != match.TeamA.CaptainID && reporterID != match.TeamB.CaptainID {
		return nil, ErrNotMatchCaptain
	}

	loser := match.TeamB.Name
	if winner == nameB {
		loser = match.TeamA.Name
	}
	result := models.MatchResult{
		MatchID:    matchID,
		Winner:     winner,
		Loser:      loser,
		ReportedBy: reporterID,
		ReportedAt: time.Now(),
	}
	r.results[matchID] = result
	return &result, nil
}

func (r *inMemoryBracketRepository) Results() []models.MatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MatchResult, 0, len(r.results))
	for _, m := range r.matches {
		if res, ok := r.results[m.ID]; ok {
			out = append(out, res)
		}
	}
	return out
}
