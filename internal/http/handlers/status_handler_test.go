package handlers

import (
	"net/http"
	"testing"

	"github.com/tbourn/fanclub-backend/internal/services"
	"github.com/tbourn/fanclub-backend/internal/storage"
)

func TestHealth(t *testing.T) {
	st := &stubStatusSvc{health: services.Health{Status: services.StatusDisconnected, Timestamp: "2024-04-03T12:00:00Z"}}
	w := do(newRouter(stubs{status: st}), http.MethodGet, "/api/health", nil, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("health must always answer 200, got %d", w.Code)
	}
	if w.Body.String() != `{"status":"disconnected","timestamp":"2024-04-03T12:00:00Z"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("health must not be cached")
	}
}

func TestStorageStatus(t *testing.T) {
	st := &stubStatusSvc{storage: storage.Status{Message: "Backblaze B2 is not configured. Please set the required environment variables."}}
	w := do(newRouter(stubs{status: st}), http.MethodGet, "/api/storage-status", nil, nil)
	want := `{"configured":false,"bucketName":null,"cdnBaseUrl":null,"message":"Backblaze B2 is not configured. Please set the required environment variables."}`
	if w.Code != http.StatusOK || w.Body.String() != want {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	bucket, cdn := "media", "https://cdn.example.com"
	st.storage = storage.Status{Configured: true, BucketName: &bucket, CDNBaseURL: &cdn, Message: "ok"}
	w = do(newRouter(stubs{status: st}), http.MethodGet, "/api/storage-status", nil, nil)
	if w.Body.String() != `{"configured":true,"bucketName":"media","cdnBaseUrl":"https://cdn.example.com","message":"ok"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
