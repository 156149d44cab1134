package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/povarna/fac-evaluator/internal/judge"
	"github.com/povarna/fac-evaluator/internal/models"
)

// EvaluateInput is the MCP tool input schema (matches the HTTP API field names).
type EvaluateInput struct {
	Query  string `json:"query" jsonschema:"the query the agent was asked to solve"`
	Answer string `json:"answer" jsonschema:"the agent's final answer"`
}

// ReportInput is the (empty) input schema for the report tool.
type ReportInput struct{}

// ReportOutput carries the current run metrics.
type ReportOutput struct {
	Metrics map[string]float64 `json:"metrics"`
}

// NewEvaluateHandler returns a tool handler that judges one
// query/answer pair. Pass the returned function to mcp.AddTool.
func NewEvaluateHandler(facJudge *judge.FACJudge) func(context.Context, *mcp.CallToolRequest, EvaluateInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
		result := facJudge.Evaluate(ctx, input.Query, input.Answer)
		return nil, result, nil
	}
}

// NewReportHandler returns a tool handler that reports the current run's
// success rate.
func NewReportHandler(facCollector *collector.FACCollector) func(context.Context, *mcp.CallToolRequest, ReportInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, ReportOutput, error) {
		return nil, ReportOutput{Metrics: facCollector.ReportResults()}, nil
	}
}
