package leads

import (
	"context"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier posts leads to a chat through the Telegram Bot API sendMessage method.
type TelegramNotifier struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
}

// NewTelegramNotifier returns nil when token or chatID is empty.
func NewTelegramNotifier(token string, chatID string) *TelegramNotifier {
	token = strings.TrimSpace(token)
	chatID = strings.TrimSpace(chatID)
	if token == "" || chatID == "" {
		return nil
	}
	return &TelegramNotifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultTelegramAPI,
		token:   token,
		chatID:  chatID,
	}
}

// WithBaseURL points the notifier at another Bot API server.
func (t *TelegramNotifier) WithBaseURL(baseURL string) *TelegramNotifier {
	t.baseURL = strings.TrimRight(baseURL, "/")
	return t
}

func (t *TelegramNotifier) Name() string {
	return "telegram"
}

func (t *TelegramNotifier) Notify(ctx context.Context, n Notification) error {
	form := url.Values{}
	form.Set("chat_id", t.chatID)
	form.Set("text", formatMessage(n))

	// The token is part of the path so it must never end up in errors or logs.
	endpoint := t.baseURL + "/bot" + t.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.New("build telegram request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return errors.Wrap(err, "send telegram message")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		return errors.New("telegram rejected message", slog.Int("status", resp.StatusCode))
	}
	return nil
}
