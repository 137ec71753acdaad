package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to commission reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to commission reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/commission-summary", h.getCommissionSummary)
	}
}

// getCommissionSummary godoc
// @Summary Commission summary per salesperson
// @Description Totals commission per salesperson for sales dated within the range. Members only receive their own row.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CommissionSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/commission-summary [get]
func (h *reportingHandler) getCommissionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CommissionSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid commission summary query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range. Use from and to as YYYY-MM-DD"})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	from, err := dto.ParseDate("from", params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := dto.ParseDate("to", params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("from", params.From), slog.String("to", params.To))
	summary, err := h.reportingService.CommissionSummary(c.Request.Context(), actor, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionSummaryResponse(summary, params.From, params.To))
}
