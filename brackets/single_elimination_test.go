package brackets

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/rubickshop/rubick-cup/models"
)

func makeTeams(n int) []models.Team {
	teams := make([]models.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, models.Team{
			Name:      fmt.Sprintf("Team %d", i),
			AvgRating: 2000 + i*37,
			CaptainID: int64(100 + i),
		})
	}
	return teams
}

func TestGenerateRequiresFullRoster(t *testing.T) {
	gen := NewSingleElimination()

	for _, n := range []int{0, 1, 8, 15, 17} {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			_, err := gen.Generate(GenerateParams{Teams: makeTeams(n)})
			if !errors.Is(err, ErrIncompleteRoster) {
				t.Errorf("expected ErrIncompleteRoster for %d teams, got %v", n, err)
			}
		})
	}
}

func TestGeneratePairingInvariants(t *testing.T) {
	teams := makeTeams(models.TeamQuota)

	// Несколько источников рандома: инварианты не зависят от жеребьёвки.
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			gen := NewSingleEliminationWithRand(rand.New(rand.NewSource(seed)))
			matches, err := gen.Generate(GenerateParams{Teams: teams})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(matches) != models.TeamQuota/2 {
				t.Fatalf("expected %d matches, got %d", models.TeamQuota/2, len(matches))
			}

			seen := make(map[string]int)
			for i, m := range matches {
				if m.ID != i+1 {
					t.Errorf("expected match id %d at position %d, got %d", i+1, i, m.ID)
				}
				if m.Round != 1 {
					t.Errorf("expected round 1, got %d", m.Round)
				}
				if m.TeamA.Name == m.TeamB.Name {
					t.Errorf("match %d pairs a team with itself", m.ID)
				}
				seen[m.TeamA.Name]++
				seen[m.TeamB.Name]++
			}

			if len(seen) != models.TeamQuota {
				t.Errorf("expected all %d teams in the bracket, got %d", models.TeamQuota, len(seen))
			}
			for name, count := range seen {
				if count != 1 {
					t.Errorf("team %q appears %d times, expected exactly once", name, count)
				}
			}
		})
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	teams := makeTeams(models.TeamQuota)
	original := make([]models.Team, len(teams))
	copy(original, teams)

	gen := NewSingleEliminationWithRand(rand.New(rand.NewSource(42)))
	if _, err := gen.Generate(GenerateParams{Teams: teams}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range teams {
		if teams[i].Name != original[i].Name {
			t.Fatalf("input slice was reordered at index %d", i)
		}
	}
}
