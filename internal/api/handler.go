package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/fac-evaluator/internal/answer"
	"github.com/povarna/fac-evaluator/internal/api/middleware"
	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/povarna/fac-evaluator/internal/judge"
	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ReportResponse carries the current run metrics.
type ReportResponse struct {
	Metrics map[string]float64 `json:"metrics"`
}

type Handler struct {
	judge     *judge.FACJudge
	collector *collector.FACCollector
	logger    *zerolog.Logger
}

func NewHandler(facJudge *judge.FACJudge, facCollector *collector.FACCollector, logger *zerolog.Logger) *Handler {
	return &Handler{
		judge:     facJudge,
		collector: facCollector,
		logger:    logger,
	}
}

// POST /api/v1/evaluate
// One-shot judgment of a query/response pair; does not touch the run log.
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var event models.MeasurementEvent
	if err := req.ReadEntity(&event); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", event.EventID).
		Str("query_id", event.QueryID).
		Msg("Start evaluation")

	ctx := req.Request.Context()
	finalAnswer := answer.ExtractFinalAnswer(event.Response)
	result := h.judge.Evaluate(ctx, event.Query, finalAnswer)

	h.logger.Info().
		Str("event_id", event.EventID).
		Bool("is_solved", result.IsSolved).
		Msg("Evaluation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/measurements
// Registers one measurement into the current run.
func (h *Handler) RegisterMeasurement(req *restful.Request, resp *restful.Response) {
	var event models.MeasurementEvent
	if err := req.ReadEntity(&event); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.collector.RegisterMeasurement(req.Request.Context(), event.QuerySpec(), event.Response)

	resp.WriteHeader(http.StatusAccepted)
}

// GET /api/v1/results
func (h *Handler) Results(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, ReportResponse{
		Metrics: h.collector.ReportResults(),
	})
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
