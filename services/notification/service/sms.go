package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// TwilioClient sends SMS through the Twilio Messages API.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

func NewTwilioClient() *TwilioClient {
	return &TwilioClient{
		accountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
		authToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
		fromNumber: viper.GetString("TWILIO_PHONE_NUMBER"),
		baseURL:    "https://api.twilio.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *TwilioClient) SendSMS(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("To", formatPhoneNumber(to))
	form.Set("From", t.fromNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error building sms request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio api error: %s", apiErr.Message)
		}
		return fmt.Errorf("twilio api error: status %d", resp.StatusCode)
	}

	return nil
}

// formatPhoneNumber ensures the E.164 plus prefix Twilio expects.
func formatPhoneNumber(to string) string {
	if strings.HasPrefix(to, "+") {
		return to
	}
	return "+" + to
}
