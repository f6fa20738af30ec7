package brackets

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rubickshop/rubick-cup/models"
)

var ErrIncompleteRoster = errors.New("bracket requires a full roster of registered teams")

type GenerateParams struct {
	Teams []models.Team
}

type Generator interface {
	Generate(params GenerateParams) ([]models.Match, error)

	Name() string
}

type SingleElimination struct {
	rnd *rand.Rand
}

func NewSingleElimination() *SingleElimination {
	return &SingleElimination{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSingleEliminationWithRand — для тестов с фиксированным источником.
func NewSingleEliminationWithRand(rnd *rand.Rand) *SingleElimination {
	return &SingleElimination{rnd: rnd}
}

func (g *SingleElimination) Name() string {
	return "SingleElimination"
}

// Generate строит первый раунд: сортировка по среднему рейтингу,
// равномерная жеребьёвка, пары соседних индексов, ID матчей 1..8.
// Сортировка перед жеребьёвкой на итоговое распределение не влияет,
// но воспроизводит исходный конвейер посева.
func (g *SingleElimination) Generate(params GenerateParams) ([]models.Match, error) {
	teams := params.Teams
	if len(teams) != models.TeamQuota {
		return nil, fmt.Errorf("%w: have %d of %d", ErrIncompleteRoster, len(teams), models.TeamQuota)
	}

	seeded := make([]models.Team, len(teams))
	copy(seeded, teams)
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].AvgRating < seeded[j].AvgRating
	})
	g.rnd.Shuffle(len(seeded), func(i, j int) {
		seeded[i], seeded[j] = seeded[j], seeded[i]
	})

	matches := make([]models.Match, 0, len(seeded)/2)
	matchID := 1
	for i := 0; i < len(seeded); i += 2 {
		matches = append(matches, models.Match{
			ID:    matchID,
			Round: 1,
			TeamA: seeded[i],
			TeamB: seeded[i+1],
		})
		matchID++
	}
	return matches, nil
}
