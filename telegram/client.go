package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const apiBaseURL = "https://api.telegram.org"

// Client — минимальный клиент Bot API поверх net/http. Все текстовые
// сообщения уходят с parse_mode=HTML, как и у исходного бота.
type Client interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) error
	SendPhoto(ctx context.Context, chatID int64, photoPath, caption string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
	GetChatMember(ctx context.Context, chat string, userID int64) (*ChatMember, error)
	SetMyCommands(ctx context.Context, commands []BotCommand) error
	SetWebhook(ctx context.Context, url string) error
	DeleteWebhook(ctx context.Context) error
}

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(token string) Client {
	return &client{
		baseURL: apiBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewForTest позволяет направить клиент на тестовый сервер.
func NewForTest(token, baseURL string) Client {
	return &client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *client) SendMessage(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) error {
	payload := map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}
	if markup != nil {
		payload["reply_markup"] = markup
	}
	_, err := c.call(ctx, "sendMessage", payload)
	return err
}

func (c *client) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	_, err := c.call(ctx, "answerCallbackQuery", map[string]interface{}{
		"callback_query_id": callbackID,
	})
	return err
}

func (c *client) GetChatMember(ctx context.Context, chat string, userID int64) (*ChatMember, error) {
	result, err := c.call(ctx, "getChatMember", map[string]interface{}{
		"chat_id": chat,
		"user_id": userID,
	})
	if err != nil {
		return nil, err
	}
	var member ChatMember
	if err := json.Unmarshal(result, &member); err != nil {
		return nil, fmt.Errorf("error parsing getChatMember result: %w", err)
	}
	return &member, nil
}

func (c *client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	_, err := c.call(ctx, "setMyCommands", map[string]interface{}{
		"commands": commands,
	})
	return err
}

func (c *client) SetWebhook(ctx context.Context, url string) error {
	_, err := c.call(ctx, "setWebhook", map[string]interface{}{
		"url": url,
	})
	return err
}

func (c *client) DeleteWebhook(ctx context.Context) error {
	_, err := c.call(ctx, "deleteWebhook", map[string]interface{}{})
	return err
}

// SendPhoto загружает файл через multipart/form-data.
func (c *client) SendPhoto(ctx context.Context, chatID int64, photoPath, caption string) error {
	file, err := os.Open(photoPath)
	if err != nil {
		return fmt.Errorf("error opening photo %s: %w", photoPath, err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return fmt.Errorf("error writing chat_id field: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("error writing caption field: %w", err)
		}
		if err := writer.WriteField("parse_mode", "HTML"); err != nil {
			return fmt.Errorf("error writing parse_mode field: %w", err)
		}
	}
	part, err := writer.CreateFormFile("photo", filepath.Base(photoPath))
	if err != nil {
		return fmt.Errorf("error creating photo form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("error copying photo data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("error finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendPhoto"), &body)
	if err != nil {
		return fmt.Errorf("error creating sendPhoto request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending sendPhoto request: %w", err)
	}
	defer resp.Body.Close()

	return decodeAPIError(resp)
}

func (c *client) call(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling %s payload: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending %s request: %w", method, err)
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing %s response: %w", method, err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("telegram api error on %s: %s", method, parsed.Description)
	}
	return parsed.Result, nil
}

func (c *client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

func decodeAPIError(resp *http.Response) error {
	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	if !parsed.OK {
		return fmt.Errorf("telegram api error: %s", parsed.Description)
	}
	return nil
}
