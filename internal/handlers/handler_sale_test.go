package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/handlers"
	"github.com/SscSPs/dealership_commission_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, actor, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, actor domain.Actor, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}
func (m *MockSaleService) GetSaleCommissions(ctx context.Context, actor domain.Actor, saleID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, actor, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockSaleService) CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (*domain.SaleResult, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}
func (m *MockSaleService) UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (*domain.SaleResult, error) {
	args := m.Called(ctx, actor, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}
func (m *MockSaleService) DeleteSale(ctx context.Context, actor domain.Actor, saleID string) error {
	args := m.Called(ctx, actor, saleID)
	return args.Error(0)
}
func (m *MockSaleService) PreviewCommission(in commission.Input) commission.Breakdown {
	args := m.Called(in)
	return args.Get(0).(commission.Breakdown)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ListLedgerEntries(ctx context.Context, actor domain.Actor, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}
func (m *MockReportingService) CommissionSummary(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CommissionSummary, error) {
	args := m.Called(ctx, actor, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionSummary), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockSaleService      *MockSaleService
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *SaleHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "commission-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockSaleService = new(MockSaleService)
	suite.mockReportingService = new(MockReportingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterSaleRoutes(v1, suite.mockSaleService)
	handlers.RegisterCommissionRoutes(v1, suite.mockSaleService, suite.mockReportingService)
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService)
}

func (suite *SaleHandlerTestSuite) do(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, role))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testSale(salespersonID string) *domain.Sale {
	sale := &domain.Sale{
		SaleID:        uuid.NewString(),
		StockNumber:   "A1001",
		CustomerName:  "Jane Buyer",
		VehicleType:   commission.VehicleNew,
		SaleDate:      time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		SalePrice:     decimal.NewFromInt(25000),
		SpiffAmount:   decimal.NewFromInt(150),
		SalespersonID: salespersonID,
		Status:        domain.SalePending,
	}
	sale.Recalculate()
	return sale
}

func createBody() map[string]any {
	return map[string]any{
		"stockNumber":  "a1001",
		"customerName": "Jane Buyer",
		"vehicleType":  "new",
		"saleDate":     "2024-03-14",
		"salePrice":    "$25,000",
		"spiffAmount":  150,
	}
}

// --- Test Cases ---

func (suite *SaleHandlerTestSuite) TestCreateSale_Success() {
	userID := uuid.NewString()
	sale := testSale(userID)
	result := &domain.SaleResult{
		Sale: sale,
		Ledger: &domain.LedgerResult{SaleID: sale.SaleID, Entries: []domain.LedgerEntry{{
			EntryID: uuid.NewString(), SaleID: sale.SaleID, UserID: userID,
			Role: domain.LedgerPrimary, Amount: decimal.NewFromInt(150), SaleDate: sale.SaleDate,
		}}},
	}

	suite.mockSaleService.On("CreateSale",
		mock.Anything,
		domain.Actor{UserID: userID, Role: domain.RoleMember},
		mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
			return req.StockNumber == "a1001" && req.SalePrice.Equal(decimal.NewFromInt(25000))
		}),
	).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", createBody(), userID, domain.RoleMember)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleWriteResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.CommissionStatusRecorded, resp.CommissionStatus)
	suite.Empty(resp.Warning)
	suite.Equal(sale.SaleID, resp.Sale.SaleID)
	suite.Equal("2024-03-14", resp.Sale.SaleDate)
	suite.Len(resp.Entries, 1)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_CommissionFailureStillCreated() {
	userID := uuid.NewString()
	result := &domain.SaleResult{
		Sale:          testSale(userID),
		CommissionErr: fmt.Errorf("%w: connection reset", apperrors.ErrPersistenceWrite),
	}
	suite.mockSaleService.On("CreateSale", mock.Anything, mock.Anything, mock.Anything).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", createBody(), userID, domain.RoleMember)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleWriteResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.CommissionStatusFailed, resp.CommissionStatus)
	suite.NotEmpty(resp.Warning)
	suite.Empty(resp.Entries)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_ErrorMapping() {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate stock number", fmt.Errorf("%w: stock number A1001", apperrors.ErrDuplicate), http.StatusConflict},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"validation", fmt.Errorf("%w: shared sale requires a partner", apperrors.ErrValidation), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockSaleService.On("CreateSale", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/sales", createBody(), uuid.NewString(), domain.RoleMember)
			suite.Equal(tc.code, w.Code)
		})
	}
}

func (suite *SaleHandlerTestSuite) TestCreateSale_RejectsUnknownVehicleType() {
	body := createBody()
	body["vehicleType"] = "boat"

	w := suite.do(http.MethodPost, "/api/v1/sales", body, uuid.NewString(), domain.RoleMember)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_AcceptsUpperCaseVehicleType() {
	body := createBody()
	body["vehicleType"] = "Used"
	suite.mockSaleService.On("CreateSale", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SaleResult{Sale: testSale("u1")}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", body, "u1", domain.RoleMember)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_Unauthorized() {
	w := suite.do(http.MethodPost, "/api/v1/sales", createBody(), "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("GetSale", mock.Anything, mock.Anything, saleID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/"+saleID, nil, uuid.NewString(), domain.RoleMember)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestUpdateSale_PassesPartialFields() {
	userID := uuid.NewString()
	sale := testSale(userID)
	suite.mockSaleService.On("UpdateSale", mock.Anything, mock.Anything, sale.SaleID,
		mock.MatchedBy(func(req dto.UpdateSaleRequest) bool {
			return req.SpiffAmount != nil && req.SpiffAmount.Equal(decimal.NewFromInt(250)) && req.CustomerName == nil
		}),
	).Return(&domain.SaleResult{Sale: sale}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/sales/"+sale.SaleID, map[string]any{"spiffAmount": "250"}, userID, domain.RoleMember)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestDeleteSale() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("DeleteSale", mock.Anything, mock.Anything, saleID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sales/"+saleID, nil, uuid.NewString(), domain.RoleManager)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SaleHandlerTestSuite) TestDeleteSale_LedgerFailureKeepsSale() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("DeleteSale", mock.Anything, mock.Anything, saleID).
		Return(fmt.Errorf("%w: timeout", apperrors.ErrPersistenceWrite)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sales/"+saleID, nil, uuid.NewString(), domain.RoleManager)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *SaleHandlerTestSuite) TestGetSaleCommissions() {
	saleID := uuid.NewString()
	entries := []domain.LedgerEntry{
		{EntryID: "e1", SaleID: saleID, UserID: "alice", Role: domain.LedgerPrimary, Amount: decimal.RequireFromString("500.00")},
		{EntryID: "e2", SaleID: saleID, UserID: "bob", Role: domain.LedgerPartner, Amount: decimal.RequireFromString("500.00")},
	}
	suite.mockSaleService.On("GetSaleCommissions", mock.Anything, mock.Anything, saleID).Return(entries, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/"+saleID+"/commissions", nil, "alice", domain.RoleMember)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SaleCommissionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.True(resp.Total.Equal(decimal.NewFromInt(1000)))
}

func (suite *SaleHandlerTestSuite) TestListSales_ForbiddenFilter() {
	suite.mockSaleService.On("ListSales", mock.Anything, mock.Anything,
		mock.MatchedBy(func(p dto.ListSalesParams) bool {
			return p.SalespersonID != nil && *p.SalespersonID == "bob"
		}),
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales?salespersonID=bob", nil, "alice", domain.RoleMember)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *SaleHandlerTestSuite) TestPreviewCommission() {
	breakdown := commission.Calculate(commission.Input{
		VehicleType: commission.VehicleUsed,
		SalePrice:   decimal.NewFromInt(18000),
		SpiffAmount: decimal.NewFromInt(100),
	})
	suite.mockSaleService.On("PreviewCommission",
		mock.MatchedBy(func(in commission.Input) bool {
			return in.SalePrice.Equal(decimal.NewFromInt(18000)) && in.WarrantyPrice.IsZero()
		}),
	).Return(breakdown).Once()

	body := map[string]any{"vehicleType": "used", "salePrice": "18,000", "spiffAmount": 100, "warrantyPrice": "n/a"}
	w := suite.do(http.MethodPost, "/api/v1/commissions/preview", body, "alice", domain.RoleMember)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CommissionBreakdownResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Total.Equal(breakdown.Total))
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListLedgerEntries() {
	suite.mockReportingService.On("ListLedgerEntries", mock.Anything,
		domain.Actor{UserID: "mgr", Role: domain.RoleManager},
		mock.MatchedBy(func(p dto.ListLedgerEntriesParams) bool {
			return p.From != nil && *p.From == "2024-03-01"
		}),
	).Return(&dto.ListLedgerEntriesResponse{Entries: []dto.LedgerEntryResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/commissions/ledger?from=2024-03-01", nil, "mgr", domain.RoleManager)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCommissionSummary() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	summary := &domain.CommissionSummary{
		Rows: []domain.CommissionSummaryRow{
			{UserID: "alice", TotalAmount: decimal.RequireFromString("1250.00"), EntryCount: 2, SharedCount: 1},
		},
		GrandTotal: decimal.RequireFromString("1250.00"),
	}
	suite.mockReportingService.On("CommissionSummary", mock.Anything, mock.Anything, from, to).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/commission-summary?from=2024-03-01&to=2024-03-31", nil, "mgr", domain.RoleManager)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CommissionSummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03-01", resp.FromDate)
	suite.Len(resp.Rows, 1)
	suite.True(resp.GrandTotal.Equal(decimal.NewFromInt(1250)))
}

func (suite *SaleHandlerTestSuite) TestCommissionSummary_MissingDates() {
	w := suite.do(http.MethodGet, "/api/v1/reports/commission-summary?from=2024-03-01", nil, "mgr", domain.RoleManager)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "CommissionSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
