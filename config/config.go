package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	BotToken        string
	OrganizerChatID int64
	ChannelUsername string
	ServerPort      int
	WebhookBaseURL  string

	JWTSecretKey          string
	OrganizerPasswordHash string

	// Публикация изображения сетки (опционально).
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is not set")
	}

	organizerStr := os.Getenv("ORGANIZER_CHAT_ID")
	if organizerStr == "" {
		return nil, fmt.Errorf("ORGANIZER_CHAT_ID environment variable is not set")
	}
	organizerID, err := strconv.ParseInt(organizerStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ORGANIZER_CHAT_ID environment variable: %w", err)
	}

	channel := os.Getenv("CHANNEL_USERNAME")
	if channel == "" {
		return nil, fmt.Errorf("CHANNEL_USERNAME environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	passwordHash := os.Getenv("ORGANIZER_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, fmt.Errorf("ORGANIZER_PASSWORD_HASH environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	cfg := &Config{
		BotToken:              token,
		OrganizerChatID:       organizerID,
		ChannelUsername:       channel,
		ServerPort:            port,
		WebhookBaseURL:        os.Getenv("WEBHOOK_BASE_URL"),
		JWTSecretKey:          jwtKey,
		OrganizerPasswordHash: passwordHash,
		R2AccountID:           os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:         os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:     os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:          os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:       os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// R2Enabled — публикация изображений настроена полностью.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" && c.R2BucketName != "" && c.R2PublicBaseURL != ""
}
