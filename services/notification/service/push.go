package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

// PushClient sends push notifications through NotificationAPI.
type PushClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

type pushRecipient struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Number string `json:"number"`
}

type pushParameters struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type pushPayload struct {
	Type       string         `json:"type"`
	To         pushRecipient  `json:"to"`
	Parameters pushParameters `json:"parameters"`
}

func NewPushClient() *PushClient {
	return &PushClient{
		clientID:     viper.GetString("NOTIFICATIONAPI_CLIENT_ID"),
		clientSecret: viper.GetString("NOTIFICATIONAPI_CLIENT_SECRET"),
		baseURL:      "https://api.notificationapi.com",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *PushClient) SendPush(ctx context.Context, email, phone, message, notificationType string) error {
	payload := pushPayload{
		Type: "push",
		To: pushRecipient{
			ID:     email,
			Email:  email,
			Number: formatPhoneNumber(phone),
		},
		Parameters: pushParameters{
			Message:   message,
			Type:      notificationType,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error building push request: %w", err)
	}
	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("notificationapi error: %s", apiErr.Message)
		}
		return fmt.Errorf("notificationapi error: status %d", resp.StatusCode)
	}

	return nil
}
