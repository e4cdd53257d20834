package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateProvider) FetchRateHistory(ctx context.Context, base, target domain.CurrencyCode, start, end time.Time) ([]domain.RateHistoryPoint, error) {
	args := m.Called(ctx, base, target, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistoryPoint), args.Error(1)
}

// --- Mock RateSlotStore ---
type MockRateSlotStore struct {
	mock.Mock
}

func (m *MockRateSlotStore) GetCachedRate(ctx context.Context, key string) (*domain.CachedRate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedRate), args.Error(1)
}

func (m *MockRateSlotStore) SetCachedRate(ctx context.Context, key string, rate domain.CachedRate) error {
	args := m.Called(ctx, key, rate)
	return args.Error(0)
}

// --- Mock HistoryRecorder ---
type MockHistoryRecorder struct {
	mock.Mock
}

func (m *MockHistoryRecorder) RecordConversion(ctx context.Context, result domain.ConversionResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FindHistory(ctx context.Context, userID string, limit int, cursor portsrepo.HistoryCursor) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) AppendHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) DeleteHistoryEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockHistoryRepository) ClearHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

// --- Mock PreferenceReaderSvc ---
type MockPreferenceReader struct {
	mock.Mock
}

func (m *MockPreferenceReader) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

// --- Mock ConversionEngine ---
type MockConversionEngine struct {
	mock.Mock
}

func (m *MockConversionEngine) SelectPair(ctx context.Context, pair domain.CurrencyPair) domain.ConversionState {
	args := m.Called(ctx, pair)
	if fn, ok := args.Get(0).(func(context.Context, domain.CurrencyPair) domain.ConversionState); ok {
		return fn(ctx, pair)
	}
	return args.Get(0).(domain.ConversionState)
}

func (m *MockConversionEngine) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

func (m *MockConversionEngine) State() domain.ConversionState {
	args := m.Called()
	return args.Get(0).(domain.ConversionState)
}

func (m *MockConversionEngine) Flush() {
	m.Called()
}
