package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/core/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockHistoryRepository
	service  portssvc.HistorySvcFacade
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockHistoryRepository)
	suite.service = services.NewHistoryService(suite.mockRepo)
}

func historyEntries(n int, newest time.Time) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, n)
	for i := range entries {
		entries[i] = domain.HistoryEntry{
			EntryID:   uuid.NewString(),
			UserID:    "u1",
			Amount:    decimal.NewFromInt(int64(i + 1)),
			From:      "USD",
			To:        "INR",
			Result:    "83.00",
			CreatedAt: newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return entries
}

func (suite *HistoryServiceTestSuite) TestRecordConversion_AppendsEntry() {
	result := domain.ConversionResult{
		UserID:          "u1",
		Amount:          decimal.NewFromInt(10),
		From:            "USD",
		To:              "INR",
		Rate:            83.256,
		ConvertedAmount: decimal.RequireFromString("832.56"),
	}
	suite.mockRepo.On("AppendHistoryEntry", suite.ctx, mock.MatchedBy(func(e domain.HistoryEntry) bool {
		_, err := uuid.Parse(e.EntryID)
		return err == nil && e.UserID == "u1" && e.Result == "832.56" && e.Amount.Equal(decimal.NewFromInt(10)) &&
			e.From == "USD" && e.To == "INR"
	})).Return(&domain.HistoryEntry{EntryID: "x", UserID: "u1"}, nil).Once()

	err := suite.service.RecordConversion(suite.ctx, result)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestRecordConversion_RequiresOwner() {
	err := suite.service.RecordConversion(suite.ctx, domain.ConversionResult{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendHistoryEntry", mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestRecordConversion_RepositoryError() {
	suite.mockRepo.On("AppendHistoryEntry", suite.ctx, mock.Anything).Return(nil, apperrors.ErrPersistence).Once()

	err := suite.service.RecordConversion(suite.ctx, domain.ConversionResult{UserID: "u1"})

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *HistoryServiceTestSuite) TestListHistory_FirstPageWithMore() {
	newest := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := historyEntries(3, newest)
	suite.mockRepo.On("FindHistory", suite.ctx, "u1", 3, portsrepo.HistoryCursor{}).Return(entries, nil).Once()

	resp, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListHistoryParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 2)
	suite.Equal(entries[0].EntryID, resp.Entries[0].EntryID)
	suite.Equal(entries[1].EntryID, resp.Entries[1].EntryID)
	suite.Require().NotNil(resp.NextToken)

	createdAt, entryID, err := pagination.DecodeToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.True(entries[1].CreatedAt.Equal(createdAt))
	suite.Equal(entries[1].EntryID, entryID)
}

func (suite *HistoryServiceTestSuite) TestListHistory_LastPageHasNoToken() {
	entries := historyEntries(2, time.Now().UTC())
	suite.mockRepo.On("FindHistory", suite.ctx, "u1", 21, portsrepo.HistoryCursor{}).Return(entries, nil).Once()

	resp, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListHistoryParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 2)
	suite.Nil(resp.NextToken)
}

func (suite *HistoryServiceTestSuite) TestListHistory_UsesCursorFromToken() {
	createdAt := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(createdAt, "entry-9")
	suite.mockRepo.On("FindHistory", suite.ctx, "u1", 6, portsrepo.HistoryCursor{CreatedAt: createdAt, EntryID: "entry-9"}).
		Return([]domain.HistoryEntry{}, nil).Once()

	resp, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListHistoryParams{Limit: 5, NextToken: token})

	suite.Require().NoError(err)
	suite.Empty(resp.Entries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListHistory_InvalidParams() {
	_, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListHistoryParams{Limit: 101})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListHistory(suite.ctx, "u1", dto.ListHistoryParams{NextToken: "garbage!"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "FindHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestDeleteHistoryEntry() {
	entryID := uuid.NewString()
	suite.mockRepo.On("DeleteHistoryEntry", suite.ctx, "u1", entryID).Return(nil).Once()

	err := suite.service.DeleteHistoryEntry(suite.ctx, "u1", entryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestDeleteHistoryEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockRepo.On("DeleteHistoryEntry", suite.ctx, "u1", entryID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteHistoryEntry(suite.ctx, "u1", entryID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HistoryServiceTestSuite) TestDeleteHistoryEntry_InvalidID() {
	err := suite.service.DeleteHistoryEntry(suite.ctx, "u1", "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteHistoryEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestClearHistory() {
	suite.mockRepo.On("ClearHistory", suite.ctx, "u1").Return(int64(4), nil).Once()

	removed, err := suite.service.ClearHistory(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(int64(4), removed)
}

func (suite *HistoryServiceTestSuite) TestClearHistory_Error() {
	suite.mockRepo.On("ClearHistory", suite.ctx, "u1").Return(int64(0), apperrors.ErrPersistence).Once()

	removed, err := suite.service.ClearHistory(suite.ctx, "u1")

	suite.Zero(removed)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
