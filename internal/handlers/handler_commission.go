package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commissionHandler serves the commission preview and the ledger listing.
type commissionHandler struct {
	previewService   portssvc.CommissionPreviewSvc
	reportingService portssvc.ReportingSvcFacade
}

func newCommissionHandler(ps portssvc.CommissionPreviewSvc, rs portssvc.ReportingSvcFacade) *commissionHandler {
	return &commissionHandler{
		previewService:   ps,
		reportingService: rs,
	}
}

// RegisterCommissionRoutes registers the commission preview and ledger routes.
func RegisterCommissionRoutes(rg *gin.RouterGroup, previewService portssvc.CommissionPreviewSvc, reportingService portssvc.ReportingSvcFacade) {
	h := newCommissionHandler(previewService, reportingService)

	commissions := rg.Group("/commissions")
	{
		commissions.POST("/preview", h.previewCommission)
		commissions.GET("/ledger", h.listLedgerEntries)
	}
}

// previewCommission godoc
// @Summary Preview commission
// @Description Computes the commission breakdown for draft line items. Missing or unparseable amounts count as zero.
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   items body dto.CommissionPreviewRequest true "Draft line items"
// @Success 200 {object} dto.CommissionBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /commissions/preview [post]
func (h *commissionHandler) previewCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommissionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	breakdown := h.previewService.PreviewCommission(req.ToInput())
	c.JSON(http.StatusOK, dto.ToCommissionBreakdownResponse(breakdown))
}

// listLedgerEntries godoc
// @Summary List commission ledger entries
// @Description Lists ledger entries newest sale first. Members only see their own entries.
// @Tags commissions
// @Produce  json
// @Param   userID query string false "Beneficiary user ID"
// @Param   from query string false "Earliest sale date (YYYY-MM-DD)"
// @Param   to query string false "Latest sale date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /commissions/ledger [get]
func (h *commissionHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListLedgerEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	resp, err := h.reportingService.ListLedgerEntries(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledger entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}
