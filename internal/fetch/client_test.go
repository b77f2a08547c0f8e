package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artgallery/internal/catalog"
	"artgallery/internal/fetch"
)

func TestNewRejectsBadURLs(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com/catalog.json", "://broken"} {
		if _, err := fetch.New(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != "artgallery-test" {
			t.Errorf("unexpected user agent %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artists":[{"name":"Ada","bio":"x","image":"a","works":[]}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := fetch.New(server.URL, fetch.WithUserAgent("artgallery-test"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got.Len() != 1 || got.Artists[0].Name != "Ada" {
		t.Fatalf("unexpected catalog: %#v", got)
	}
}

func TestFetchServerErrorIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"artists":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := fetch.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Fetch(context.Background())
	if !errors.Is(err, fetch.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	var netErr *fetch.NetworkError
	if !errors.As(err, &netErr) || netErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 in NetworkError, got %#v", err)
	}
}

func TestFetchDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artists":[{"name":"Ada"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := fetch.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Fetch(context.Background())
	if !errors.Is(err, catalog.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if errors.Is(err, fetch.ErrNetwork) {
		t.Fatal("decode failure must not be reported as a network error")
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := fetch.New(url, fetch.WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Fetch(context.Background()); !errors.Is(err, fetch.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestFetchBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artists":[` + strings.Repeat(" ", 64) + `]}`))
	}))
	t.Cleanup(server.Close)

	client, err := fetch.New(server.URL, fetch.WithMaxBytes(16))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Fetch(context.Background()); !errors.Is(err, fetch.ErrNetwork) {
		t.Fatalf("expected ErrNetwork for oversize body, got %v", err)
	}
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := fetch.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Fetch(ctx); !errors.Is(err, fetch.ErrNetwork) {
		t.Fatalf("expected ErrNetwork on timeout, got %v", err)
	}
}
