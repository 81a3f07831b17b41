package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/dashboard"
	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetReports(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	reportService    report.ReportService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, reportService report.ReportService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

func dateRangeFromQuery(r *http.Request) dashboard.DateRange {
	return dashboard.DateRange{
		From: optionalQueryParam(r, "from"),
		To:   optionalQueryParam(r, "to"),
	}
}

// GetDashboard returns stats and reports in one response
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())

	result, err := h.dashboardService.GetDashboard(r.Context(), sess, dateRangeFromQuery(r))
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetStats returns the headline figures only
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboardStats(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		slog.Error("GetDashboardStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetReports returns the chart reports the session may view
func (h *dashboardHandlerImpl) GetReports(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())

	from, to, err := dateRangeFromQuery(r).Resolve(time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateReports(r.Context(), sess, from, to)
	if err != nil {
		slog.Error("GenerateReports service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
