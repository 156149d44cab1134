package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/povarna/fac-evaluator/internal/judge"
	"github.com/povarna/fac-evaluator/internal/llm/remote"
	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newTestContainer(t *testing.T, judgeBody string) *restful.Container {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(judgeBody))
	}))
	t.Cleanup(srv.Close)

	client, err := remote.NewClient(srv.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	facJudge := judge.NewFACJudge(client, newTestLogger())
	facCollector := collector.NewFACCollector(facJudge, newTestLogger())
	facCollector.SetUp()

	container := restful.NewContainer()
	RegisterRoutes(container, NewHandler(facJudge, facCollector, newTestLogger()))
	return container
}

func TestEvaluateEndpoint(t *testing.T) {
	container := newTestContainer(t, `{"generated_text": "Answer Status\nSolved\nReason: complete"}`)

	body := `{"event_id":"e1","query_id":"q1","query":"List two colors.","response":{"final_answer":"Red and blue."}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.EvaluationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.IsSolved {
		t.Error("expected solved verdict")
	}
}

func TestEvaluateEndpoint_BadBody(t *testing.T) {
	container := newTestContainer(t, `{"generated_text": "Answer Status\nSolved"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestMeasurementsAndResults(t *testing.T) {
	container := newTestContainer(t, `{"text": "Answer Status\nSolved\nReason: complete"}`)

	body := `{"event_id":"e1","query_id":"q1","query":"List two colors.","response":{"final_answer":"Red and blue."}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/measurements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/results", nil)
	rec = httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report ReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if rate := report.Metrics[collector.MetricAverageTaskSuccess]; rate != 1.0 {
		t.Errorf("expected rate 1.0, got %f", rate)
	}
}

func TestHealthEndpoint(t *testing.T) {
	container := newTestContainer(t, `{}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
