package endpoint

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Do_ReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient()
	body, err := client.Do(context.Background(), Request{URL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("expected body %q, got %q", "hello", string(body))
	}
}

func TestClient_Do_QueryAndHeaders(t *testing.T) {
	var gotLabel, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLabel = r.URL.Query().Get("label")
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := NewClient()
	req := Request{
		URL:    server.URL,
		Header: http.Header{"Authorization": {"bearer token-123"}},
		Query:  map[string][]string{"label": {"live"}},
	}
	if _, err := client.Do(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLabel != "live" {
		t.Errorf("expected label query %q, got %q", "live", gotLabel)
	}
	if gotAuth != "bearer token-123" {
		t.Errorf("expected auth header %q, got %q", "bearer token-123", gotAuth)
	}
}

func TestClient_Do_FormBody(t *testing.T) {
	var gotGrant, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotGrant = r.PostFormValue("grant_type")
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	client := NewClient()
	req := Request{
		URL:    server.URL,
		Method: http.MethodPost,
		Form:   map[string][]string{"grant_type": {"client_credentials"}},
	}
	if _, err := client.Do(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotGrant != "client_credentials" {
		t.Errorf("expected grant_type %q, got %q", "client_credentials", gotGrant)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("expected form content type, got %q", gotContentType)
	}
}

func TestClient_Do_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Do(context.Background(), Request{URL: server.URL})

	var epErr *Error
	if !errors.As(err, &epErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if epErr.Kind != KindStatus {
		t.Errorf("expected KindStatus, got %v", epErr.Kind)
	}
	if epErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", epErr.StatusCode)
	}
	if !epErr.IsAuthStatus() {
		t.Error("expected IsAuthStatus to be true for 401")
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewClient()
	_, err := client.Do(context.Background(), Request{URL: server.URL})

	if !IsKind(err, KindTransport) {
		t.Errorf("expected KindTransport, got %v", err)
	}
}

func TestClient_DoJSON_Decodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept: application/json, got %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"label":"live","buildVersion":"++Release-1.0"}`))
	}))
	defer server.Close()

	var result struct {
		Label        string `json:"label"`
		BuildVersion string `json:"buildVersion"`
	}
	client := NewClient()
	if err := client.DoJSON(context.Background(), Request{URL: server.URL}, &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Label != "live" || result.BuildVersion != "++Release-1.0" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_DoJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	var result map[string]any
	client := NewClient()
	err := client.DoJSON(context.Background(), Request{URL: server.URL}, &result)

	if !IsKind(err, KindDecode) {
		t.Errorf("expected KindDecode, got %v", err)
	}
}

func TestClient_Do_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	_, err := client.Do(ctx, Request{URL: server.URL})
	if !IsKind(err, KindTransport) {
		t.Errorf("expected KindTransport on cancelled context, got %v", err)
	}
}
