package http_test

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"auth-api/pkg/http"
)

type echoPayload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type apiError struct {
	Error string `json:"error"`
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Query().Get("q") != "abc" {
			t.Errorf("query param q = %q, want %q", r.URL.Query().Get("q"), "abc")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"widget","value":7}`)
	}))
	defer server.Close()

	client := http.NewHttpClient(server.URL, http.ClientOptions{})

	var payload echoPayload
	_, _, status, err := client.Request().
		WithMethod(http.GET).
		WithPath("/things").
		WithQueryParams(map[string]string{"q": "abc"}).
		WithSuccessResp(&payload).
		Execute()
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if status != nethttp.StatusOK {
		t.Errorf("status = %d, want %d", status, nethttp.StatusOK)
	}
	if payload.Name != "widget" || payload.Value != 7 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		var received echoPayload
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := http.NewHttpClient(server.URL, http.ClientOptions{})

	var created echoPayload
	_, _, status, err := client.Request().
		WithMethod(http.POST).
		WithPath("/things").
		WithBody(echoPayload{Name: "widget", Value: 7}).
		WithSuccessResp(&created).
		Execute()
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if status != nethttp.StatusCreated {
		t.Errorf("status = %d, want %d", status, nethttp.StatusCreated)
	}
	if created.Name != "widget" {
		t.Errorf("created = %+v", created)
	}
}

func TestErrorResponse(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
		fmt.Fprint(w, `{"error":"name is required"}`)
	}))
	defer server.Close()

	client := http.NewHttpClient(server.URL, http.ClientOptions{})

	var errResp apiError
	_, returnedErr, status, err := client.Request().
		WithMethod(http.GET).
		WithPath("/things").
		WithErrorResp(&errResp).
		Execute()
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if status != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, nethttp.StatusBadRequest)
	}
	if returnedErr == nil || errResp.Error != "name is required" {
		t.Errorf("error response = %+v", errResp)
	}
}

func TestDismiss404(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	client := http.NewHttpClient(server.URL, http.ClientOptions{Dismiss404: true})

	_, _, status, err := client.Request().
		WithMethod(http.GET).
		WithPath("/missing").
		Execute()
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if status != nethttp.StatusNotFound {
		t.Errorf("status = %d, want %d", status, nethttp.StatusNotFound)
	}
}

func TestPlainTextResponse(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "plain body")
	}))
	defer server.Close()

	client := http.NewHttpClient(server.URL, http.ClientOptions{})

	var body string
	_, _, _, err := client.Request().
		WithMethod(http.GET).
		WithPath("/text").
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if body != "plain body" {
		t.Errorf("body = %q, want %q", body, "plain body")
	}
}
