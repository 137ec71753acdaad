package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- MockSaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleSnapshot(ctx context.Context, saleID string) (*domain.SaleSnapshot, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleSnapshot), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sales, token, args.Error(2)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

// --- MockLedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntriesBySaleID(ctx context.Context, saleID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntriesBySaleID(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockLedgerRepository) ReplaceEntries(ctx context.Context, saleID string, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, saleID, entries)
	return args.Error(0)
}

var _ portsrepo.CommissionLedgerRepositoryFacade = (*MockLedgerRepository)(nil)

// --- MockReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SummarizeByUser(ctx context.Context, from, to time.Time, userID *string) ([]domain.CommissionSummaryRow, error) {
	args := m.Called(ctx, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionSummaryRow), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// --- memStore: stateful in-memory sales and ledger ---

var errInjected = errors.New("injected failure")

// memStore keeps sales and ledger rows in memory so lifecycle tests can
// observe the resulting state rather than call sequences.
type memStore struct {
	mu      sync.Mutex
	sales   map[string]domain.Sale
	entries map[string][]domain.LedgerEntry

	failSnapshot bool
	failInsert   bool
	failDelete   bool
	failReplace  bool
}

func newMemStore() *memStore {
	return &memStore{
		sales:   map[string]domain.Sale{},
		entries: map[string][]domain.LedgerEntry{},
	}
}

func (s *memStore) FindSaleByID(_ context.Context, saleID string) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.sales[saleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sale, nil
}

func (s *memStore) FindSaleSnapshot(_ context.Context, saleID string) (*domain.SaleSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSnapshot {
		return nil, errInjected
	}
	sale, ok := s.sales[saleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &domain.SaleSnapshot{
		SaleID:        sale.SaleID,
		SaleDate:      sale.SaleDate,
		StockNumber:   sale.StockNumber,
		CustomerName:  sale.CustomerName,
		VehicleType:   sale.VehicleType,
		Status:        sale.Status,
		SalespersonID: sale.SalespersonID,
		PartnerID:     sale.PartnerID,
	}, nil
}

func (s *memStore) ListSales(_ context.Context, filter domain.SaleFilter, limit int, _ *string) ([]domain.Sale, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Sale
	for _, sale := range s.sales {
		if filter.InvolvingUserID != nil && !sale.Involves(*filter.InvolvingUserID) {
			continue
		}
		out = append(out, sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (s *memStore) SaveSale(_ context.Context, sale domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sales {
		if existing.StockNumber == sale.StockNumber {
			return apperrors.ErrDuplicate
		}
	}
	s.sales[sale.SaleID] = sale
	return nil
}

func (s *memStore) UpdateSale(_ context.Context, sale domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[sale.SaleID]; !ok {
		return apperrors.ErrNotFound
	}
	s.sales[sale.SaleID] = sale
	return nil
}

func (s *memStore) DeleteSale(_ context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[saleID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.sales, saleID)
	return nil
}

func (s *memStore) FindEntriesBySaleID(_ context.Context, saleID string) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LedgerEntry(nil), s.entries[saleID]...), nil
}

func (s *memStore) ListEntries(_ context.Context, filter domain.LedgerFilter, limit int, _ *string) ([]domain.LedgerEntry, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, entries := range s.entries {
		for _, e := range entries {
			if filter.UserID != nil && e.UserID != *filter.UserID {
				continue
			}
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (s *memStore) InsertEntries(_ context.Context, entries []domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert {
		return errInjected
	}
	for _, e := range entries {
		for _, existing := range s.entries[e.SaleID] {
			if existing.Role == e.Role {
				return apperrors.ErrDuplicate
			}
		}
	}
	for _, e := range entries {
		s.entries[e.SaleID] = append(s.entries[e.SaleID], e)
	}
	return nil
}

func (s *memStore) DeleteEntriesBySaleID(_ context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errInjected
	}
	delete(s.entries, saleID)
	return nil
}

func (s *memStore) ReplaceEntries(_ context.Context, saleID string, entries []domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReplace {
		return errInjected
	}
	s.entries[saleID] = append([]domain.LedgerEntry(nil), entries...)
	return nil
}

func (s *memStore) entryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, entries := range s.entries {
		n += len(entries)
	}
	return n
}

var (
	_ portsrepo.SaleRepositoryFacade             = (*memStore)(nil)
	_ portsrepo.CommissionLedgerRepositoryFacade = (*memStore)(nil)
)
