package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/export"
	"github.com/tripsmith/tripsmith/src/planner"
	"github.com/tripsmith/tripsmith/src/storage"
	"github.com/tripsmith/tripsmith/src/tripagent"
)

const defaultListLimit = 20

// PlansHandler serves plan creation and retrieval.
type PlansHandler struct {
	Agent    *tripagent.Agent
	DB       *storage.DB
	Exporter *export.Exporter
	Validate *validator.Validate
	Logger   *slog.Logger
}

func (h *PlansHandler) Register(g *echo.Group) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/markdown", h.markdown)
}

type planResponse struct {
	PlanID        string `json:"plan_id"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Status        string `json:"status"`
	Itinerary     string `json:"itinerary,omitempty"`
	ToolCallsMade int    `json:"tool_calls_made"`
	ExportPath    string `json:"export_path,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (h *PlansHandler) create(c echo.Context) error {
	var req tripagent.TripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.Validate.Struct(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			e := vErrs[0]
			return echo.NewHTTPError(http.StatusBadRequest,
				"invalid field "+e.Field()+": failed "+e.Tag()+" constraint")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	startDate, _ := req.Dates(time.Now())

	run := &storage.PlanRun{
		FromCity:    req.FromCity,
		Destination: req.Destination,
		StartDate:   startDate,
		Days:        req.Days,
		Travelers:   req.Travelers,
		Budget:      req.Budget,
		Vibe:        req.Vibe,
	}
	if err := storage.CreatePlanRun(ctx, h.DB.DB(), run); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recorder := agent.NewExecutionRecorder()
	result, planErr := h.Agent.PlanTrip(agent.WithRecorder(ctx, recorder), &req)

	h.persistExecutions(c, run.ID, recorder)

	if planErr != nil {
		if err := storage.FailPlanRun(ctx, h.DB.DB(), run.ID, planErr.Error()); err != nil {
			h.Logger.Warn("failed to record plan failure", "plan_id", run.ID, "error", err)
		}

		code := http.StatusInternalServerError
		var modelErr *planner.ModelInvocationError
		if errors.As(planErr, &modelErr) {
			code = http.StatusBadGateway
		}
		return echo.NewHTTPError(code, planErr.Error())
	}

	if err := storage.CompletePlanRun(ctx, h.DB.DB(), run.ID, result.CorrelationID, result.Itinerary, result.ToolCallsMade); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.persistMessages(c, run.ID, result)

	exportPath := ""
	if h.Exporter != nil {
		path, err := h.Exporter.Write(run.ID, req.Destination, startDate, result.Itinerary)
		if err != nil {
			h.Logger.Warn("failed to export itinerary", "plan_id", run.ID, "error", err)
		} else {
			exportPath = path
		}
	}

	return c.JSON(http.StatusOK, planResponse{
		PlanID:        run.ID,
		CorrelationID: result.CorrelationID,
		Status:        storage.StatusCompleted,
		Itinerary:     result.Itinerary,
		ToolCallsMade: result.ToolCallsMade,
		ExportPath:    exportPath,
	})
}

// persistMessages saves the full conversation for later inspection.
// Persistence failures are logged, not surfaced; the itinerary is
// already stored on the run itself.
func (h *PlansHandler) persistMessages(c echo.Context, planID string, result *tripagent.PlanResult) {
	ctx := c.Request().Context()
	for i, msg := range result.Messages {
		record := &storage.PlanMessage{
			PlanID:  planID,
			Seq:     i,
			Role:    msg.Role,
			Content: msg.Content,
		}
		if len(msg.ToolCalls) > 0 {
			if data, err := json.Marshal(msg.ToolCalls); err == nil {
				s := string(data)
				record.ToolCalls = &s
			}
		}
		if err := storage.CreatePlanMessage(ctx, h.DB.DB(), record); err != nil {
			h.Logger.Warn("failed to persist message", "plan_id", planID, "seq", i, "error", err)
			return
		}
	}
}

func (h *PlansHandler) persistExecutions(c echo.Context, planID string, recorder *agent.ExecutionRecorder) {
	ctx := c.Request().Context()
	for _, record := range recorder.Records() {
		execution := &storage.ToolExecution{
			PlanID:     planID,
			ToolName:   record.Tool,
			Input:      string(record.Input),
			Output:     record.Output,
			Error:      record.Error,
			DurationMs: record.Duration.Milliseconds(),
		}
		if err := storage.CreateToolExecution(ctx, h.DB.DB(), execution); err != nil {
			h.Logger.Warn("failed to persist tool execution", "plan_id", planID, "tool", record.Tool, "error", err)
			return
		}
	}
}

func (h *PlansHandler) list(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	runs, err := storage.ListPlanRuns(c.Request().Context(), h.DB.DB(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if runs == nil {
		runs = []storage.PlanRun{}
	}
	return c.JSON(http.StatusOK, runs)
}

func (h *PlansHandler) get(c echo.Context) error {
	run, err := h.loadRun(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, run)
}

func (h *PlansHandler) markdown(c echo.Context) error {
	run, err := h.loadRun(c)
	if err != nil {
		return err
	}
	if run.Status != storage.StatusCompleted || run.Itinerary == "" {
		return echo.NewHTTPError(http.StatusConflict, "plan has no itinerary")
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(run.Itinerary))
}

func (h *PlansHandler) loadRun(c echo.Context) (*storage.PlanRun, error) {
	run, err := storage.GetPlanRunByID(c.Request().Context(), h.DB.DB(), c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if run == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "plan not found")
	}
	return run, nil
}
