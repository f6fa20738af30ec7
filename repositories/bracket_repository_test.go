package repositories

import (
	"errors"
	"testing"

	"github.com/rubickshop/rubick-cup/models"
)

func seededBracket() BracketRepository {
	repo := NewInMemoryBracketRepository()
	repo.Seed([]models.Match{
		{
			ID: 1, Round: 1,
			TeamA: models.Team{Name: "Alpha", CaptainID: 100},
			TeamB: models.Team{Name: "Beta", CaptainID: 200},
		},
		{
			ID: 2, Round: 1,
			TeamA: models.Team{Name: "Gamma", CaptainID: 300},
			TeamB: models.Team{Name: "Delta", CaptainID: 400},
		},
	})
	return repo
}

func TestRecordResultNoActiveTournament(t *testing.T) {
	repo := NewInMemoryBracketRepository()
	if _, err := repo.RecordResult(1, "Alpha", 100); !errors.Is(err, ErrNoActiveTournament) {
		t.Errorf("expected ErrNoActiveTournament, got %v", err)
	}
}

func TestRecordResultValidationOrder(t *testing.T) {
	// Порядок проверок фиксирован; от него зависит, какую ошибку получит
	// некорректный запрос, пришедший позже других.
	tests := map[string]struct {
		matchID  int
		winner   string
		reporter int64
		prepare  func(repo BracketRepository)
		expected error
	}{
		"unknown match before anything else": {
			matchID: 9, winner: "Alpha", reporter: 999,
			expected: ErrMatchNotFound,
		},
		"foreign team name rejected even from another match": {
			matchID: 1, winner: "Gamma", reporter: 100,
			expected: ErrWinnerNotInMatch,
		},
		"wrong winner beats already-reported": {
			matchID: 1, winner: "Gamma", reporter: 999,
			prepare: func(repo BracketRepository) {
				if _, err := repo.RecordResult(1, "Alpha", 100); err != nil {
					t.Fatalf("prepare failed: %v", err)
				}
			},
			expected: ErrWinnerNotInMatch,
		},
		"already-reported beats authorization": {
			matchID: 1, winner: "Beta", reporter: 999,
			prepare: func(repo BracketRepository) {
				if _, err := repo.RecordResult(1, "Alpha", 100); err != nil {
					t.Fatalf("prepare failed: %v", err)
				}
			},
			expected: ErrResultAlreadyReported,
		},
		"authorization checked last": {
			matchID: 1, winner: "Alpha", reporter: 999,
			expected: ErrNotMatchCaptain,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := seededBracket()
			if tc.prepare != nil {
				tc.prepare(repo)
			}
			_, err := repo.RecordResult(tc.matchID, tc.winner, tc.reporter)
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestRecordResultCaseInsensitiveWinner(t *testing.T) {
	repo := seededBracket()

	// Капитан Alpha сообщает победу Beta в нижнем регистре.
	result, err := repo.RecordResult(1, "beta", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Winner != "beta" {
		t.Errorf("expected winner to be stored lowercased, got %q", result.Winner)
	}
	if result.Loser != "Alpha" {
		t.Errorf("expected loser Alpha, got %q", result.Loser)
	}
	if result.ReportedBy != 100 {
		t.Errorf("expected reporter 100, got %d", result.ReportedBy)
	}
}

func TestRecordResultIdempotentReject(t *testing.T) {
	repo := seededBracket()

	first, err := repo.RecordResult(1, "Alpha", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Повтор с другим, тоже валидным победителем от второго капитана.
	_, err = repo.RecordResult(1, "Beta", 200)
	if !errors.Is(err, ErrResultAlreadyReported) {
		t.Fatalf("expected ErrResultAlreadyReported, got %v", err)
	}

	results := repo.Results()
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].Winner != first.Winner {
		t.Errorf("recorded winner must not change: expected %q, got %q", first.Winner, results[0].Winner)
	}
}

func TestSeedClearsResults(t *testing.T) {
	repo := seededBracket()
	if _, err := repo.RecordResult(1, "Alpha", 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.Seed([]models.Match{
		{ID: 1, Round: 1, TeamA: models.Team{Name: "Epsilon", CaptainID: 500}, TeamB: models.Team{Name: "Zeta", CaptainID: 600}},
	})
	if len(repo.Results()) != 0 {
		t.Error("expected result history to be cleared after reseed")
	}
	if _, err := repo.RecordResult(1, "Zeta", 600); err != nil {
		t.Errorf("expected fresh match to accept a result, got %v", err)
	}
}

func TestActive(t *testing.T) {
	repo := NewInMemoryBracketRepository()
	if repo.Active() {
		t.Error("expected no active tournament before seed")
	}
	repo.Seed(nil)
	if !repo.Active() {
		t.Error("expected active tournament after seed")
	}
}
