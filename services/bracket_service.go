package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/models"
	"github.com/rubickshop/rubick-cup/repositories"
	"github.com/rubickshop/rubick-cup/storage"
)

// RenderFunc — чистая функция отрисовки сетки в файл изображения.
type RenderFunc func(pairings []brackets.Pairing, round int) (string, error)

type BracketService interface {
	// GenerateBracket жеребит полный реестр в 8 матчей первого раунда,
	// сеет трекер результатов, рассылает сетку капитанам и организатору.
	// Повторный вызов заменяет сетку и сбрасывает историю результатов.
	GenerateBracket(ctx context.Context) ([]models.Match, error)
}

type bracketService struct {
	roster      repositories.RosterRepository
	bracketRepo repositories.BracketRepository
	generator   brackets.Generator
	render      RenderFunc
	uploader    storage.FileUploader // nil, если публикация изображения не настроена
	notifier    Notifier
	hub         *brackets.Hub
	organizerID int64
	logger      *slog.Logger
}

func NewBracketService(
	roster repositories.RosterRepository,
	bracketRepo repositories.BracketRepository,
	generator brackets.Generator,
	render RenderFunc,
	uploader storage.FileUploader,
	notifier Notifier,
	hub *brackets.Hub,
	organizerID int64,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		roster:      roster,
		bracketRepo: bracketRepo,
		generator:   generator,
		render:      render,
		uploader:    uploader,
		notifier:    notifier,
		hub:         hub,
		organizerID: organizerID,
		logger:      logger,
	}
}

func (s *bracketService) GenerateBracket(ctx context.Context) ([]models.Match, error) {
	teams := s.roster.ListTeams()
	matches, err := s.generator.Generate(brackets.GenerateParams{Teams: teams})
	if err != nil {
		return nil, err
	}

	s.bracketRepo.Seed(matches)
	s.logger.Info("bracket generated",
		slog.Int("matches", len(matches)), slog.String("generator", s.generator.Name()))

	imagePath := s.renderImage(matches)
	s.notifyCaptains(ctx, matches, imagePath)
	s.notifyOrganizer(ctx, matches, imagePath)
	s.hub.BroadcastEvent(brackets.EventBracketGenerated, matches)

	return matches, nil
}

func (s *bracketService) renderImage(matches []models.Match) string {
	pairings := make([]brackets.Pairing, 0, len(matches))
	for _, m := range matches {
		pairings = append(pairings, brackets.Pairing{TeamA: m.TeamA.Name, TeamB: m.TeamB.Name})
	}
	path, err := s.render(pairings, 1)
	if err != nil {
		// Сетка остаётся валидной и без картинки, капитаны получат текст.
		s.logger.Error("failed to render bracket image", slog.Any("error", err))
		return ""
	}
	return path
}

// notifyCaptains рассылает матчи капитанам. Отказ доставки одному
// получателю не прерывает рассылку остальным: ошибки копятся и уходят
// организатору одним сообщением.
func (s *bracketService) notifyCaptains(ctx context.Context, matches []models.Match, imagePath string) {
	var (
		mu       sync.Mutex
		failures []string
	)
	g := new(errgroup.Group)

	for _, m := range matches {
		match := m
		text := matchAnnouncement(match)
		for _, captainID := range []int64{match.TeamA.CaptainID, match.TeamB.CaptainID} {
			chatID := captainID
			g.Go(func() error {
				var err error
				if imagePath != "" {
					err = s.notifier.NotifyPhoto(ctx, chatID, imagePath, text)
				} else {
					err = s.notifier.Notify(ctx, chatID, text)
				}
				if err != nil {
					mu.Lock()
					failures = append(failures, fmt.Sprintf("матч #%d, чат %d: %v", match.ID, chatID, err))
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	if len(failures) > 0 {
		report := "❗ Ошибка при уведомлении капитанов:\n" + strings.Join(failures, "\n")
		if err := s.notifier.Notify(ctx, s.organizerID, report); err != nil {
			s.logger.Error("failed to report delivery failures to organizer", slog.Any("error", err))
		}
	}
}

func (s *bracketService) notifyOrganizer(ctx context.Context, matches []models.Match, imagePath string) {
	var sb strings.Builder
	sb.WriteString("📊 <b>Турнирная сетка — Раунд 1</b>\n\n")
	for _, m := range matches {
		fmt.Fprintf(&sb, "Матч #%d: %s vs %s\n", m.ID, m.TeamA.Name, m.TeamB.Name)
	}
	if url := s.publishImage(ctx, imagePath); url != "" {
		fmt.Fprintf(&sb, "\n🖼 %s", url)
	}
	if err := s.notifier.Notify(ctx, s.organizerID, sb.String()); err != nil {
		s.logger.Error("failed to send match list to organizer", slog.Any("error", err))
	}
}

// publishImage выкладывает изображение сетки в объектное хранилище и
// возвращает публичный URL. Без настроенного хранилища ничего не делает.
func (s *bracketService) publishImage(ctx context.Context, imagePath string) string {
	if s.uploader == nil || imagePath == "" {
		return ""
	}
	file, err := os.Open(imagePath)
	if err != nil {
		s.logger.Error("failed to open bracket image for upload", slog.Any("error", err))
		return ""
	}
	defer file.Close()

	result, err := s.uploader.Upload(ctx, "brackets/round1.png", "image/png", file)
	if err != nil {
		s.logger.Error("failed to upload bracket image", slog.Any("error", err))
		return ""
	}
	return result.Location
}

func matchAnnouncement(m models.Match) string {
	return fmt.Sprintf(
		"🏆 <b>Турнир Rubick Cup — Раунд %d</b>\n"+
			"\n🎮 Матч <b>#%d</b>\n"+
			"<b>%s</b> vs <b>%s</b>\n\n"+
			"📌 Капитаны, после матча используйте команду:\n"+
			"<code>/report_result %d Имя_Победителя</code>\n",
		m.Round, m.ID, m.TeamA.Name, m.TeamB.Name, m.ID,
	)
}
