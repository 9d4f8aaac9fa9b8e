// Package notifier implements the delivery transport for announcements.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seismoio/quakewatch/pkg/domain"
)

// DefaultAPIBase is the production Telegram Bot API endpoint
const DefaultAPIBase = "https://api.telegram.org"

// Telegram delivers messages through the Telegram Bot API. A 403 response
// (bot blocked or account deactivated) is a permanent failure; anything else
// that goes wrong is treated as transient.
type Telegram struct {
	token      string
	apiBase    string
	httpClient *http.Client
}

// NewTelegram creates a telegram notifier with the given bot token
func NewTelegram(token string, timeout time.Duration) *Telegram {
	return &Telegram{
		token:      token,
		apiBase:    DefaultAPIBase,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithAPIBase overrides the API endpoint, used in tests
func (t *Telegram) WithAPIBase(base string) *Telegram {
	t.apiBase = base
	return t
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Send delivers the text to the given chat and classifies the outcome
func (t *Telegram) Send(ctx context.Context, subscriberID int64, text string) (domain.DeliveryOutcome, error) {
	body, err := json.Marshal(sendMessageRequest{ChatID: subscriberID, Text: text})
	if err != nil {
		return domain.DeliveryTransientFailure, fmt.Errorf("marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.DeliveryTransientFailure, fmt.Errorf("create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return domain.DeliveryTransientFailure, fmt.Errorf("send message to %d: %w", subscriberID, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return domain.DeliveryTransientFailure, fmt.Errorf("decode send response: %w", err)
	}

	if apiResp.OK {
		return domain.DeliveryOK, nil
	}

	if resp.StatusCode == http.StatusForbidden {
		return domain.DeliveryPermanentFailure, fmt.Errorf("chat %d unreachable: %s", subscriberID, apiResp.Description)
	}
	return domain.DeliveryTransientFailure, fmt.Errorf("send to %d failed with code %d: %s",
		subscriberID, apiResp.ErrorCode, apiResp.Description)
}
