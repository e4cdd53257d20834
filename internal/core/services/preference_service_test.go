package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/core/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PreferenceServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockPreferenceRepository
	service  portssvc.PreferenceSvcFacade
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockPreferenceRepository)
	suite.service = services.NewPreferenceService(suite.mockRepo)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferences_Stored() {
	stored := &domain.Preferences{UserID: "u1", DarkMode: true, BaseCurrency: "EUR", TargetCurrency: "JPY", UpdatedAt: time.Now()}
	suite.mockRepo.On("FindPreferences", suite.ctx, "u1").Return(stored, nil).Once()

	prefs, err := suite.service.GetPreferences(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(stored, prefs)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferences_DefaultsWhenMissing() {
	suite.mockRepo.On("FindPreferences", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()

	prefs, err := suite.service.GetPreferences(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal("u1", prefs.UserID)
	suite.False(prefs.DarkMode)
	suite.Equal(domain.CurrencyCode("USD"), prefs.BaseCurrency)
	suite.Equal(domain.CurrencyCode("INR"), prefs.TargetCurrency)
}

func (suite *PreferenceServiceTestSuite) TestGetPreferences_RepositoryError() {
	suite.mockRepo.On("FindPreferences", suite.ctx, "u1").Return(nil, apperrors.ErrPersistence).Once()

	prefs, err := suite.service.GetPreferences(suite.ctx, "u1")

	suite.Nil(prefs)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *PreferenceServiceTestSuite) TestUpdatePreferences_NormalizesCodes() {
	before := time.Now().UTC()
	suite.mockRepo.On("SavePreferences", suite.ctx, mock.MatchedBy(func(p domain.Preferences) bool {
		return p.UserID == "u1" && p.DarkMode &&
			p.BaseCurrency == "EUR" && p.TargetCurrency == "GBP" &&
			!p.UpdatedAt.Before(before)
	})).Return(nil).Once()
	saved := domain.Preferences{UserID: "u1", DarkMode: true, BaseCurrency: "EUR", TargetCurrency: "GBP", UpdatedAt: time.Now()}
	suite.mockRepo.On("FindPreferences", suite.ctx, "u1").Return(&saved, nil).Once()

	prefs, err := suite.service.UpdatePreferences(suite.ctx, "u1", dto.UpdatePreferencesRequest{
		DarkMode:       true,
		BaseCurrency:   " eur",
		TargetCurrency: "gbp",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.CurrencyCode("EUR"), prefs.BaseCurrency)
	suite.False(prefs.UpdatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestUpdatePreferences_InvalidCurrency() {
	_, err := suite.service.UpdatePreferences(suite.ctx, "u1", dto.UpdatePreferencesRequest{
		BaseCurrency:   "EURO",
		TargetCurrency: "INR",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePreferences", mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestUpdatePreferences_SaveError() {
	suite.mockRepo.On("SavePreferences", suite.ctx, mock.Anything).Return(apperrors.ErrPersistence).Once()

	_, err := suite.service.UpdatePreferences(suite.ctx, "u1", dto.UpdatePreferencesRequest{
		BaseCurrency:   "USD",
		TargetCurrency: "INR",
	})

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
