package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

func TestGroqGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "model reply"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{
		GroqAPIKey:  "test-key",
		GroqBaseURL: ts.URL,
		GroqModel:   "test-model",
		Timeout:     5 * time.Second,
	})

	reply, err := client.Generate(context.Background(), "say something")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if reply != "model reply" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestGroqGenerate_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{
		GroqAPIKey:  "test-key",
		GroqBaseURL: ts.URL,
		Timeout:     5 * time.Second,
	})

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestGroqGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{
		GroqAPIKey:  "test-key",
		GroqBaseURL: ts.URL,
		Timeout:     5 * time.Second,
	})

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
