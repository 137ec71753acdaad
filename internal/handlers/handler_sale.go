package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// RegisterSaleRoutes registers routes for the sale lifecycle.
func RegisterSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.PUT("/:saleID", h.updateSale)
		sales.DELETE("/:saleID", h.deleteSale)
		sales.GET("/:saleID/commissions", h.getSaleCommissions)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale, computes its commission and writes the commission ledger entries.
// @Description If the sale is saved but the ledger write fails, the response is still 201 with commissionStatus "failed".
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleWriteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Stock number already recorded"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to record sale", slog.String("stock_number", req.StockNumber))

	result, err := h.saleService.CreateSale(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record sale")
		return
	}

	if !result.CommissionRecorded() {
		logger.Warn("Sale recorded without commission ledger entries", slog.String("sale_id", result.Sale.SaleID))
	}
	c.JSON(http.StatusCreated, dto.ToSaleWriteResponse(result))
}

// listSales godoc
// @Summary List sales
// @Description Lists sales newest first. Members only see sales where they are the salesperson or the partner.
// @Tags sales
// @Produce  json
// @Param   salespersonID query string false "Salesperson user ID"
// @Param   status query string false "Sale status" Enums(pending, completed)
// @Param   from query string false "Earliest sale date (YYYY-MM-DD)"
// @Param   to query string false "Latest sale date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to get sale"
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), actor, saleID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("sale_id", saleID)), err, "Failed to get sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update a sale
// @Description Applies a partial update, recalculates commission and replaces the sale's ledger entries.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   sale body dto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} dto.SaleWriteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to update sale"
// @Security BearerAuth
// @Router /sales/{saleID} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("sale_id", saleID))
	result, err := h.saleService.UpdateSale(c.Request.Context(), actor, saleID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update sale")
		return
	}

	if !result.CommissionRecorded() {
		logger.Warn("Sale updated without replacing commission ledger entries")
	}
	c.JSON(http.StatusOK, dto.ToSaleWriteResponse(result))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes the sale's commission ledger entries and then the sale. If the ledger delete fails the sale is kept.
// @Tags sales
// @Param   saleID path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("sale_id", saleID))
	if err := h.saleService.DeleteSale(c.Request.Context(), actor, saleID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete sale")
		return
	}

	logger.Info("Sale deleted successfully")
	c.Status(http.StatusNoContent)
}

// getSaleCommissions godoc
// @Summary List a sale's commission ledger entries
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleCommissionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to get commissions"
// @Security BearerAuth
// @Router /sales/{saleID}/commissions [get]
func (h *saleHandler) getSaleCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	entries, err := h.saleService.GetSaleCommissions(c.Request.Context(), actor, saleID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("sale_id", saleID)), err, "Failed to get commissions")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleCommissionsResponse(saleID, entries))
}
