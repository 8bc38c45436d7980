package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestPushClient(serverURL string) *PushClient {
	return &PushClient{
		clientID:     "client-id",
		clientSecret: "client-secret",
		baseURL:      serverURL,
		httpClient:   http.DefaultClient,
	}
}

func TestSendPush_OK(t *testing.T) {
	var gotPayload pushPayload
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		if r.URL.Path != "/v1/notifications" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestPushClient(server.URL)
	err := client.SendPush(context.Background(), "owner@example.com", "919876543210", "New booking request", "new_booking_request")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUser != "client-id" || gotPass != "client-secret" {
		t.Fatalf("unexpected basic auth %q:%q", gotUser, gotPass)
	}
	if gotPayload.Type != "push" {
		t.Fatalf("unexpected payload type %q", gotPayload.Type)
	}
	if gotPayload.To.ID != "owner@example.com" || gotPayload.To.Email != "owner@example.com" {
		t.Fatalf("unexpected recipient %+v", gotPayload.To)
	}
	if gotPayload.To.Number != "+919876543210" {
		t.Fatalf("expected formatted number, got %q", gotPayload.To.Number)
	}
	if gotPayload.Parameters.Message != "New booking request" {
		t.Fatalf("unexpected message %q", gotPayload.Parameters.Message)
	}
	if gotPayload.Parameters.Type != "new_booking_request" {
		t.Fatalf("unexpected type %q", gotPayload.Parameters.Type)
	}
	if gotPayload.Parameters.Timestamp == "" {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestSendPush_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer server.Close()

	client := newTestPushClient(server.URL)
	err := client.SendPush(context.Background(), "owner@example.com", "+15550001111", "hi", "booking_update")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Fatalf("expected api message in error, got %v", err)
	}
}
