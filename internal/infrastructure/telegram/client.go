package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// maxErrorBody caps how much of a rejected response ends up in the error.
const maxErrorBody = 512

// Client posts messages to one chat through the Telegram Bot API.
type Client struct {
	http   *resty.Client
	token  string
	chatID string
}

// NewClient builds a client for the configured bot and chat. Credentials are
// captured here; the client never rereads configuration.
func NewClient(cfg domain.TelegramConfig) *Client {
	base := strings.TrimRight(cfg.APIURL, "/")
	if base == "" {
		base = domain.DefaultTelegramAPIURL
	}
	return &Client{
		http:   resty.New().SetBaseURL(base).SetTimeout(domain.DispatchTimeout),
		token:  strings.TrimSpace(cfg.BotToken),
		chatID: strings.TrimSpace(cfg.ChatID),
	}
}

// Send implements ports.Notifier. Text is sent with Markdown parse mode so
// *bold* and `code` render in the chat.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == "" {
		return domain.ErrMissingCredentials
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":    c.chatID,
			"text":       text,
			"parse_mode": "Markdown",
		}).
		Post("/bot" + c.token + "/sendMessage")
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrDispatch, c.redact(err.Error()))
	}
	if resp.StatusCode() != http.StatusOK {
		body := resp.String()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return fmt.Errorf("%w: status %d: %s", domain.ErrDispatch, resp.StatusCode(), c.redact(body))
	}
	return nil
}

// redact keeps the bot token out of errors and logs; transport errors embed the request URL.
func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<token>")
}

var _ ports.Notifier = (*Client)(nil)
