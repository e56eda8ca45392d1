package api_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auth-api/internal/domain/gateway/api"
	pkghttp "auth-api/pkg/http"
)

func suffixOf(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(fmt.Sprintf("%x", sum))[5:]
}

func TestCountBreaches(t *testing.T) {
	const password = "password123"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/range/") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if len(strings.TrimPrefix(r.URL.Path, "/range/")) != 5 {
			t.Errorf("expected a 5 character hash prefix, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintf(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n%s:1042\r\nFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:1\r\n", suffixOf(password))
	}))
	defer server.Close()

	gateway := api.NewBreachGateway(server.URL, pkghttp.ClientOptions{})

	count, err := gateway.CountBreaches(password)
	if err != nil {
		t.Fatalf("CountBreaches returned error: %v", err)
	}
	if count != 1042 {
		t.Errorf("CountBreaches = %d, want 1042", count)
	}
}

func TestCountBreachesCleanPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n")
	}))
	defer server.Close()

	gateway := api.NewBreachGateway(server.URL, pkghttp.ClientOptions{})

	count, err := gateway.CountBreaches("unique passphrase nobody leaked")
	if err != nil {
		t.Fatalf("CountBreaches returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("CountBreaches = %d, want 0", count)
	}
}

func TestCountBreachesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := api.NewBreachGateway(server.URL, pkghttp.ClientOptions{})

	if _, err := gateway.CountBreaches("whatever"); err == nil {
		t.Error("expected an error when the range API fails")
	}
}
