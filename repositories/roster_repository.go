package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/rubickshop/rubick-cup/models"
)

// RosterRepository — реестр зарегистрированных команд. Держит глобальную
// уникальность ников и игровых ID и квоту на 16 команд.
type RosterRepository interface {
	// RegisterTeam атомарно валидирует и коммитит команду: квота,
	// уникальность имени (без учёта регистра), глобальная уникальность
	// каждого игрока и отсутствие дублей внутри заявки.
	RegisterTeam(name string, players []models.Player, captainID int64) (*models.Team, error)

	IsFull() bool
	Count() int
	NameTaken(name string) bool
	PlayerTaken(handle, gameID string) bool
	ListTeams() []models.Team
}

type inMemoryRosterRepository struct {
	mu          sync.Mutex
	teams       []models.Team
	usedHandles map[string]struct{}
	usedGameIDs map[string]struct{}
}

func NewInMemoryRosterRepository() RosterRepository {
	return &inMemoryRosterRepository{
		usedHandles: make(map[string]struct{}),
		usedGameIDs: make(map[string]struct{}),
	}
}

func (r *inMemoryRosterRepository) RegisterTeam(name string, players []models.Player, captainID int64) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if len(players) != models.TeamSize {
		return nil, ErrInvalidTeamSize
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Квота проверяется до всего остального.
	if len(r.teams) >= models.TeamQuota {
		return nil, ErrRegistrationClosed
	}
	if r.nameTakenLocked(name) {
		return nil, ErrTeamNameTaken
	}

	seenHandles := make(map[string]struct{}, models.TeamSize)
	seenGameIDs := make(map[string]struct{}, models.TeamSize)
	sum := 0
	for _, p := range players {
		if _, ok := r.usedHandles[p.Handle]; ok {
			return nil, ErrPlayerTaken
		}
		if _, ok := r.usedGameIDs[p.GameID]; ok {
			return nil, ErrPlayerTaken
		}
		if _, ok := seenHandles[p.Handle]; ok {
			return nil, ErrDuplicateInTeam
		}
		if _, ok := seenGameIDs[p.GameID]; ok {
			return nil, ErrDuplicateInTeam
		}
		seenHandles[p.Handle] = struct{}{}
		seenGameIDs[p.GameID] = struct{}{}
		sum += p.Rating
	}

	team := models.Team{
		Name:      name,
		Players:   append([]models.Player(nil), players...),
		AvgRating: sum / models.TeamSize,
		CaptainID: captainID,
		CreatedAt: time.Now(),
	}
	r.teams = append(r.teams, team)
	for _, p := range players {
		r.usedHandles[p.Handle] = struct{}{}
		r.usedGameIDs[p.GameID] = struct{}{}
	}
	return &team, nil
}

func (r *inMemoryRosterRepository) IsFull() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teams) >= models.TeamQuota
}

func (r *inMemoryRosterRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teams)
}

func (r *inMemoryRosterRepository) NameTaken(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nameTakenLocked(strings.TrimSpace(name))
}

func (r *inMemoryRosterRepository) nameTakenLocked(name string) bool {
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func (r *inMemoryRosterRepository) PlayerTaken(handle, gameID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usedHandles[handle]; ok {
		return true
	}
	_, ok := r.usedGameIDs[gameID]
	return ok
}

func (r *inMemoryRosterRepository) ListTeams() []models.Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Team, len(r.teams))
	copy(out, r.teams)
	return out
}
