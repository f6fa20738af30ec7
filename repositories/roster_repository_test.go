package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rubickshop/rubick-cup/models"
)

func testPlayers(teamNo int) []models.Player {
	players := make([]models.Player, 0, models.TeamSize)
	for i := 0; i < models.TeamSize; i++ {
		players = append(players, models.Player{
			Handle: fmt.Sprintf("@team%d_p%d", teamNo, i),
			GameID: fmt.Sprintf("%d%04d", teamNo, i),
			Rating: 3000 + teamNo*10 + i,
		})
	}
	return players
}

func fillRoster(t *testing.T, repo RosterRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := repo.RegisterTeam(fmt.Sprintf("Team %d", i), testPlayers(i), int64(100+i)); err != nil {
			t.Fatalf("failed to register team %d: %v", i, err)
		}
	}
}

func TestRegisterTeamQuota(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	fillRoster(t, repo, models.TeamQuota)

	if !repo.IsFull() {
		t.Error("expected roster to be full after 16 teams")
	}
	_, err := repo.RegisterTeam("Latecomers", testPlayers(99), 999)
	if !errors.Is(err, ErrRegistrationClosed) {
		t.Errorf("expected ErrRegistrationClosed for team 17, got %v", err)
	}
	if repo.Count() != models.TeamQuota {
		t.Errorf("expected count to stay at %d, got %d", models.TeamQuota, repo.Count())
	}
}

func TestRegisterTeamNameUniqueness(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	if _, err := repo.RegisterTeam("Alpha Squad", testPlayers(1), 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]string{
		"exact duplicate":       "Alpha Squad",
		"different case":        "ALPHA SQUAD",
		"surrounding spaces":    "  Alpha Squad  ",
		"mixed case with space": " alpha squad",
	}
	for name, teamName := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := repo.RegisterTeam(teamName, testPlayers(2), 101)
			if !errors.Is(err, ErrTeamNameTaken) {
				t.Errorf("expected ErrTeamNameTaken for %q, got %v", teamName, err)
			}
		})
	}
}

func TestRegisterTeamPlayerUniqueness(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	first := testPlayers(1)
	if _, err := repo.RegisterTeam("Alpha", first, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Повтор ника из первой команды — при любом уникальном имени команды.
	second := testPlayers(2)
	second[3].Handle = first[0].Handle
	if _, err := repo.RegisterTeam("Beta", second, 101); !errors.Is(err, ErrPlayerTaken) {
		t.Errorf("expected ErrPlayerTaken for reused handle, got %v", err)
	}

	// Повтор игрового ID.
	third := testPlayers(3)
	third[4].GameID = first[2].GameID
	if _, err := repo.RegisterTeam("Gamma", third, 102); !errors.Is(err, ErrPlayerTaken) {
		t.Errorf("expected ErrPlayerTaken for reused game id, got %v", err)
	}

	// Отказ не должен резервировать игроков из отклонённой заявки.
	if _, err := repo.RegisterTeam("Delta", testPlayers(2), 103); !errors.Is(err, nil) {
		t.Errorf("handle from rejected submission must stay free, got %v", err)
	}
}

func TestRegisterTeamDuplicateWithinSubmission(t *testing.T) {
	repo := NewInMemoryRosterRepository()

	players := testPlayers(1)
	players[4].Handle = players[0].Handle
	if _, err := repo.RegisterTeam("Alpha", players, 100); !errors.Is(err, ErrDuplicateInTeam) {
		t.Errorf("expected ErrDuplicateInTeam for repeated handle, got %v", err)
	}

	players = testPlayers(1)
	players[4].GameID = players[1].GameID
	if _, err := repo.RegisterTeam("Alpha", players, 100); !errors.Is(err, ErrDuplicateInTeam) {
		t.Errorf("expected ErrDuplicateInTeam for repeated game id, got %v", err)
	}
}

func TestRegisterTeamAverageRating(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	players := testPlayers(1)
	ratings := []int{4000, 3500, 3333, 2100, 1999} // sum=14932, 14932/5=2986.4
	for i := range players {
		players[i].Rating = ratings[i]
	}

	team, err := repo.RegisterTeam("Alpha", players, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.AvgRating != 2986 {
		t.Errorf("expected floored average 2986, got %d", team.AvgRating)
	}
	if team.CaptainID != 100 {
		t.Errorf("expected captain id 100, got %d", team.CaptainID)
	}
}

func TestRegisterTeamEmptyName(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	if _, err := repo.RegisterTeam("   ", testPlayers(1), 100); !errors.Is(err, ErrTeamNameRequired) {
		t.Errorf("expected ErrTeamNameRequired, got %v", err)
	}
}

func TestListTeamsOrder(t *testing.T) {
	repo := NewInMemoryRosterRepository()
	fillRoster(t, repo, 5)

	teams := repo.ListTeams()
	if len(teams) != 5 {
		t.Fatalf("expected 5 teams, got %d", len(teams))
	}
	for i, team := range teams {
		expected := fmt.Sprintf("Team %d", i)
		if team.Name != expected {
			t.Errorf("expected team %d to be %q, got %q", i, expected, team.Name)
		}
	}
}
