package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/povarna/fac-evaluator/internal/judge"
	"github.com/povarna/fac-evaluator/internal/llm/remote"
	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// stubJudge returns canned results, optionally panicking to exercise the
// collector's failure isolation.
type stubJudge struct {
	results []models.EvaluationResult
	calls   int
	panics  bool
}

func (s *stubJudge) Evaluate(ctx context.Context, query string, answer string) models.EvaluationResult {
	if s.panics {
		panic("judge blew up")
	}
	result := s.results[s.calls%len(s.results)]
	s.calls++
	return result
}

func TestFACCollector_ReportResults(t *testing.T) {
	j := &stubJudge{results: []models.EvaluationResult{
		{Evaluation: "Answer Status\nSolved", IsSolved: true},
		{Evaluation: "Answer Status\nSolved", IsSolved: true},
		{Evaluation: "Answer Status\nUnsolved", IsSolved: false},
		{Evaluation: "Answer Status\nSolved", IsSolved: true},
	}}

	c := NewFACCollector(j, newTestLogger())
	c.SetUp()

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		spec := models.QuerySpecification{QueryID: "q", Query: "query"}
		c.RegisterMeasurement(ctx, spec, models.AgentResponse{FinalAnswer: "answer"})
	}
	c.TearDown()

	results := c.ReportResults()
	if rate := results[MetricAverageTaskSuccess]; rate != 0.75 {
		t.Errorf("expected rate 0.75, got %f", rate)
	}
}

func TestFACCollector_EmptyRun(t *testing.T) {
	c := NewFACCollector(&stubJudge{}, newTestLogger())
	c.SetUp()

	results := c.ReportResults()
	if rate := results[MetricAverageTaskSuccess]; rate != 0.0 {
		t.Errorf("expected 0.0 for empty run, got %f", rate)
	}
}

func TestFACCollector_PanicRecordsFalse(t *testing.T) {
	j := &stubJudge{panics: true}
	c := NewFACCollector(j, newTestLogger())
	c.SetUp()

	spec := models.QuerySpecification{QueryID: "q1", Query: "query"}
	c.RegisterMeasurement(context.Background(), spec, models.AgentResponse{FinalAnswer: "answer"})

	// The panic must neither escape nor lose the entry.
	results := c.ReportResults()
	if rate := results[MetricAverageTaskSuccess]; rate != 0.0 {
		t.Errorf("expected 0.0, got %f", rate)
	}
}

func TestFACCollector_OneEntryPerMeasurement(t *testing.T) {
	j := &stubJudge{results: []models.EvaluationResult{{IsSolved: true}}}
	c := NewFACCollector(j, newTestLogger())
	c.SetUp()

	ctx := context.Background()
	const calls = 7
	for i := 0; i < calls; i++ {
		c.RegisterMeasurement(ctx, models.QuerySpecification{Query: "q"}, models.AgentResponse{FinalAnswer: "a"})
	}

	if rate := c.ReportResults()[MetricAverageTaskSuccess]; rate != 1.0 {
		t.Errorf("expected rate 1.0 over %d entries, got %f", calls, rate)
	}
	if j.calls != calls {
		t.Errorf("expected %d judge calls, got %d", calls, j.calls)
	}
}

func TestFACCollector_SetUpResetsRun(t *testing.T) {
	j := &stubJudge{results: []models.EvaluationResult{{IsSolved: false}}}
	c := NewFACCollector(j, newTestLogger())

	c.SetUp()
	c.RegisterMeasurement(context.Background(), models.QuerySpecification{Query: "q"}, models.AgentResponse{FinalAnswer: "a"})

	// Next run starts empty.
	c.SetUp()
	if rate := c.ReportResults()[MetricAverageTaskSuccess]; rate != 0.0 {
		t.Errorf("expected fresh run after SetUp, got rate %f", rate)
	}
}

func TestFACCollector_MetricNames(t *testing.T) {
	c := NewFACCollector(&stubJudge{}, newTestLogger())

	names := c.CollectedMetricNames()
	if len(names) != 1 || names[0] != "Average Task Success (FAC Evaluator)" {
		t.Errorf("unexpected metric names: %v", names)
	}
}

func TestFACCollector_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": "Answer Status\nSolved\nReason: complete"}`))
	}))
	defer srv.Close()

	client, err := remote.NewClient(srv.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	c := NewFACCollector(judge.NewFACJudge(client, newTestLogger()), newTestLogger())
	c.SetUp()

	spec := models.QuerySpecification{QueryID: "colors-1", Query: "List two colors."}
	c.RegisterMeasurement(context.Background(), spec, models.AgentResponse{FinalAnswer: "Red and blue."})

	if rate := c.ReportResults()[MetricAverageTaskSuccess]; rate != 1.0 {
		t.Errorf("expected rate 1.0, got %f", rate)
	}
}

func TestFACCollector_EndToEnd_JudgeDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := remote.NewClient(srv.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	c := NewFACCollector(judge.NewFACJudge(client, newTestLogger()), newTestLogger())
	c.SetUp()

	spec := models.QuerySpecification{QueryID: "q1", Query: "List two colors."}
	c.RegisterMeasurement(context.Background(), spec, models.AgentResponse{FinalAnswer: "Red and blue."})

	// The transport failure becomes an Unsolved outcome, not a crash.
	results := c.ReportResults()
	if rate := results[MetricAverageTaskSuccess]; rate != 0.0 {
		t.Errorf("expected 0.0 when the judge is down, got %f", rate)
	}
}
