package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/fac-evaluator/internal/api/middleware"
	"github.com/povarna/fac-evaluator/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Evaluate).
			Doc("Judge a query/answer pair without recording it").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(models.MeasurementEvent{}).
			Writes(models.EvaluationResult{}).
			Returns(200, "OK", models.EvaluationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/measurements").
			To(handler.RegisterMeasurement).
			Doc("Judge a query/answer pair and record the outcome in the current run").
			Metadata(restfulspec.KeyOpenAPITags, []string{"measurements"}).
			Reads(models.MeasurementEvent{}).
			Returns(202, "Accepted", nil).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/results").
			To(handler.Results).
			Doc("Report the current run's success rate").
			Metadata(restfulspec.KeyOpenAPITags, []string{"measurements"}).
			Writes(ReportResponse{}).
			Returns(200, "OK", ReportResponse{}))

	container.Add(ws)
}
