package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/fac-evaluator/internal/llm"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestNewClient_MissingURL(t *testing.T) {
	_, err := NewClient("", newTestLogger())
	if err == nil {
		t.Fatal("expected error for missing judge model URL")
	}
}

func TestGenerateText_SendsFixedPayload(t *testing.T) {
	var got generateRequest
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(`{"generated_text": "ok"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.GenerateText(context.Background(), llm.Request{Prompt: "judge this", MaxNewTokens: 512})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("expected application/json content type, got %q", contentType)
	}
	if got.Prompt != "judge this" {
		t.Errorf("expected prompt to pass through, got %q", got.Prompt)
	}
	if got.MaxNewTokens != 512 {
		t.Errorf("expected max_new_tokens=512, got %d", got.MaxNewTokens)
	}
	if got.DoSample {
		t.Error("expected do_sample=false")
	}
	if got.TopP != 1.0 {
		t.Errorf("expected top_p=1.0, got %f", got.TopP)
	}
}

func TestGenerateText_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL, newTestLogger())

	_, err := client.GenerateText(context.Background(), llm.Request{Prompt: "p", MaxNewTokens: 512})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status code in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("expected response body in error, got %q", err.Error())
	}
}

func TestGenerateText_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client, _ := NewClient(srv.URL, newTestLogger())

	_, err := client.GenerateText(context.Background(), llm.Request{Prompt: "p", MaxNewTokens: 512})
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
}

func TestGenerateText_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL, newTestLogger())

	_, err := client.GenerateText(context.Background(), llm.Request{Prompt: "p", MaxNewTokens: 512})
	if err == nil {
		t.Fatal("expected error for malformed JSON body")
	}
}

func TestExtractGeneratedText_KeyPriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "generated_text",
			body: `{"generated_text": "a"}`,
			want: "a",
		},
		{
			name: "text",
			body: `{"text": "b"}`,
			want: "b",
		},
		{
			name: "response",
			body: `{"response": "c"}`,
			want: "c",
		},
		{
			name: "output",
			body: `{"output": "d"}`,
			want: "d",
		},
		{
			name: "generated_text wins over text",
			body: `{"text": "loser", "generated_text": "winner"}`,
			want: "winner",
		},
		{
			name: "text wins over output",
			body: `{"output": "loser", "text": "winner"}`,
			want: "winner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractGeneratedText([]byte(tt.body))
			if err != nil {
				t.Fatalf("extractGeneratedText failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractGeneratedText_StringifyFallback(t *testing.T) {
	body := `{"foo": "Answer Status\nSolved"}`

	got, err := extractGeneratedText([]byte(body))
	if err != nil {
		t.Fatalf("extractGeneratedText failed: %v", err)
	}

	// No known key: the whole body is passed through so the verdict
	// parser can still find the status token.
	if !strings.Contains(got, "Solved") {
		t.Errorf("expected stringified body to contain the status token, got %q", got)
	}
}

func TestExtractGeneratedText_NonStringValueSkipped(t *testing.T) {
	body := `{"generated_text": 42, "text": "winner"}`

	got, err := extractGeneratedText([]byte(body))
	if err != nil {
		t.Fatalf("extractGeneratedText failed: %v", err)
	}
	if got != "winner" {
		t.Errorf("expected non-string match to be skipped, got %q", got)
	}
}
