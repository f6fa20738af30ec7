package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewForTest("TESTTOKEN", server.URL), server
}

func TestSendMessagePayload(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"ok":true,"result":{}}`))
	})

	err := client.SendMessage(context.Background(), 42, "<b>hi</b>", mainMenuForTest())
	require.NoError(t, err)

	assert.Equal(t, "/botTESTTOKEN/sendMessage", gotPath)
	assert.Equal(t, float64(42), gotPayload["chat_id"])
	assert.Equal(t, "<b>hi</b>", gotPayload["text"])
	assert.Equal(t, "HTML", gotPayload["parse_mode"])
	assert.NotNil(t, gotPayload["reply_markup"])
}

func mainMenuForTest() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: "go", CallbackData: "register"}},
		},
	}
}

func TestAPIErrorPropagates(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	})

	err := client.SendMessage(context.Background(), 42, "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestGetChatMember(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTESTTOKEN/getChatMember", r.URL.Path)
		w.Write([]byte(`{"ok":true,"result":{"status":"administrator"}}`))
	})

	member, err := client.GetChatMember(context.Background(), "@rubickshop", 42)
	require.NoError(t, err)
	assert.Equal(t, "administrator", member.Status)
}

func TestChannelSubscription(t *testing.T) {
	tests := map[string]struct {
		response   string
		subscribed bool
	}{
		"member":        {response: `{"ok":true,"result":{"status":"member"}}`, subscribed: true},
		"administrator": {response: `{"ok":true,"result":{"status":"administrator"}}`, subscribed: true},
		"creator":       {response: `{"ok":true,"result":{"status":"creator"}}`, subscribed: true},
		"left":          {response: `{"ok":true,"result":{"status":"left"}}`, subscribed: false},
		"kicked":        {response: `{"ok":true,"result":{"status":"kicked"}}`, subscribed: false},
		"api error":     {response: `{"ok":false,"description":"user not found"}`, subscribed: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.response))
			})
			subs := NewChannelSubscription(client, "@rubickshop")

			ok, err := subs.IsSubscribed(context.Background(), 42)
			require.NoError(t, err)
			assert.Equal(t, tc.subscribed, ok)
		})
	}
}
