package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestCheck_Success(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("Keep it logically awesome."))
	}))
	defer server.Close()

	result, err := Check(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.OK() {
		t.Errorf("Expected OK result, got status %d", result.Status)
	}
	if result.Body != "Keep it logically awesome." {
		t.Errorf("Unexpected body: %q", result.Body)
	}
	if gotAgent != UserAgent {
		t.Errorf("Expected User-Agent %q, got %q", UserAgent, gotAgent)
	}
	if result.URL != server.URL {
		t.Errorf("Expected URL %q, got %q", server.URL, result.URL)
	}
}

func TestCheck_NonSuccessStatusIsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := Check(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.OK() || result.Status != http.StatusNotFound {
		t.Errorf("Expected 404 result, got %d", result.Status)
	}
}

func TestCheck_BodyCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", maxBodySize*2)))
	}))
	defer server.Close()

	result, err := Check(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(result.Body) != maxBodySize {
		t.Errorf("Expected body capped at %d, got %d", maxBodySize, len(result.Body))
	}
}

func TestCheck_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := Check(context.Background(), server.URL, Options{Timeout: 50 * time.Millisecond})
	if err == nil {
		t.Fatal("Expected timeout error")
	}
}

func TestCheck_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	result, err := Check(context.Background(), server.URL, Options{Retries: 2})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.OK() {
		t.Errorf("Expected success after retry, got %d", result.Status)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}

func TestCheck_NoRetriesReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	result, err := Check(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.Status != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d", result.Status)
	}
}

func TestCheck_InvalidURL(t *testing.T) {
	if _, err := Check(context.Background(), "://bad", Options{}); err == nil {
		t.Fatal("Expected error for invalid URL")
	}
}
