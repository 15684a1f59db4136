package harvardart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchObjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/object" {
			t.Errorf("Expected path /object, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apikey") != "test-key" {
			t.Errorf("Expected apikey test-key, got %q", q.Get("apikey"))
		}
		if q.Get("hasimage") != "1" {
			t.Errorf("Expected hasimage=1, got %q", q.Get("hasimage"))
		}
		if q.Get("size") != "50" {
			t.Errorf("Expected size=50, got %q", q.Get("size"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records": [
			{"title": "Vase", "people": [{"name": "Unknown"}], "culture": "Greek",
			 "century": "5th century B.C.", "dated": "450 BC", "medium": "Clay",
			 "primaryimageurl": "http://x/1.jpg"},
			{"title": "Print", "culture": "Japanese"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	records, err := client.SearchObjects(context.Background(), 50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Vase" {
		t.Errorf("Expected title Vase, got %q", records[0].Title)
	}
	if len(records[0].People) != 1 || records[0].People[0].Name != "Unknown" {
		t.Errorf("Expected one contributor named Unknown, got %+v", records[0].People)
	}
	if records[1].People != nil {
		t.Errorf("Expected no contributors on second record, got %+v", records[1].People)
	}
}

func TestSearchObjectsMissingAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should be made without an API key")
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.SearchObjects(context.Background(), 50); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestSearchObjectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	if _, err := client.SearchObjects(context.Background(), 50); err == nil {
		t.Fatal("Expected error for non-200 response")
	}
}

func TestSearchObjectsBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	if _, err := client.SearchObjects(context.Background(), 50); err == nil {
		t.Fatal("Expected error for undecodable response")
	}
}

func TestSearchObjectsEmptyBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	records, err := client.SearchObjects(context.Background(), 50)
	if err != nil {
		t.Fatalf("Empty batch is not an error at this layer: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}
