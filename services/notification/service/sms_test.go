package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestTwilioClient(serverURL string) *TwilioClient {
	return &TwilioClient{
		accountSID: "AC000",
		authToken:  "secret",
		fromNumber: "+12025550000",
		baseURL:    serverURL,
		httpClient: http.DefaultClient,
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	if got := formatPhoneNumber("919876543210"); got != "+919876543210" {
		t.Fatalf("expected plus prefix, got %q", got)
	}
	if got := formatPhoneNumber("+919876543210"); got != "+919876543210" {
		t.Fatalf("expected number unchanged, got %q", got)
	}
}

func TestSendSMS_OK(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer server.Close()

	client := newTestTwilioClient(server.URL)
	if err := client.SendSMS(context.Background(), "919876543210", "Booking Confirmation!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/2010-04-01/Accounts/AC000/Messages.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotUser != "AC000" || gotPass != "secret" {
		t.Fatalf("unexpected basic auth %q:%q", gotUser, gotPass)
	}
	if gotTo != "+919876543210" {
		t.Fatalf("expected formatted To, got %q", gotTo)
	}
	if gotFrom != "+12025550000" {
		t.Fatalf("unexpected From %q", gotFrom)
	}
	if gotBody != "Booking Confirmation!" {
		t.Fatalf("unexpected Body %q", gotBody)
	}
}

func TestSendSMS_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer server.Close()

	client := newTestTwilioClient(server.URL)
	err := client.SendSMS(context.Background(), "notaphone", "hi")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "not a valid phone number") {
		t.Fatalf("expected api message in error, got %v", err)
	}
}

func TestSendSMS_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestTwilioClient(server.URL)
	err := client.SendSMS(context.Background(), "+15550001111", "hi")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
