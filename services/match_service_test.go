package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/repositories"
)

func newTestMatchService(t *testing.T, notifier *fakeNotifier) (MatchService, repositories.BracketRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := brackets.NewHub(logger)
	go hub.Run()

	bracketRepo := repositories.NewInMemoryBracketRepository()
	bracketRepo.Seed([]models.Match{
		{
			ID: 3, Round: 1,
			TeamA: models.Team{Name: "Alpha", CaptainID: 100},
			TeamB: models.Team{Name: "Beta", CaptainID: 200},
		},
	})
	return NewMatchService(bracketRepo, notifier, hub, testOrganizerID, logger), bracketRepo
}

func TestReportResultNotifiesOrganizer(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _ := newTestMatchService(t, notifier)

	// Капитан Alpha сообщает победу beta в нижнем регистре.
	result, err := svc.ReportResult(context.Background(), 3, "beta", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Winner != "beta" || result.Loser != "Alpha" {
		t.Errorf("unexpected result: winner %q, loser %q", result.Winner, result.Loser)
	}

	organizerMsgs := notifier.sentTo(testOrganizerID)
	if len(organizerMsgs) != 1 {
		t.Fatalf("expected 1 organizer message, got %d", len(organizerMsgs))
	}
	text := organizerMsgs[0].text
	if !strings.Contains(text, "матча #3") {
		t.Errorf("organizer message must mention the match id: %q", text)
	}
	if !strings.Contains(text, "<b>Beta</b>") {
		t.Errorf("organizer message must show the winner in title case: %q", text)
	}
	if !strings.Contains(text, "<b>Alpha</b>") {
		t.Errorf("organizer message must name the loser: %q", text)
	}
}

func TestReportResultErrorsPassThrough(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _ := newTestMatchService(t, notifier)

	if _, err := svc.ReportResult(context.Background(), 8, "Alpha", 100); !errors.Is(err, repositories.ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
	if len(notifier.sentTo(testOrganizerID)) != 0 {
		t.Error("organizer must not be notified about rejected reports")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "beta", expected: "Beta"},
		{input: "night stalkers", expected: "Night Stalkers"},
		{input: "x", expected: "X"},
	}
	for _, tc := range tests {
		if got := titleCase(tc.input); got != tc.expected {
			t.Errorf("input %q: expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}
