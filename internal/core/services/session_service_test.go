package services_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/core/services"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	preferences *MockPreferenceReader
	metrics     *metrics.ConversionMetrics
	engines     []*MockConversionEngine
	built       atomic.Int32
	service     portssvc.SessionSvc

	eventsMu sync.Mutex
	events   []string
}

func (suite *SessionServiceTestSuite) record(event string) {
	suite.eventsMu.Lock()
	defer suite.eventsMu.Unlock()
	suite.events = append(suite.events, event)
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.preferences = new(MockPreferenceReader)
	suite.metrics = metrics.NewConversionMetrics(prometheus.NewRegistry())
	suite.engines = nil
	suite.built.Store(0)
	suite.events = nil

	var mu sync.Mutex
	factory := func(userID string) portssvc.ConversionEngine {
		n := suite.built.Add(1)
		engine := new(MockConversionEngine)
		engine.On("SelectPair", mock.Anything, mock.Anything).Return(func(_ context.Context, pair domain.CurrencyPair) domain.ConversionState {
			suite.record(fmt.Sprintf("select:%d", n))
			return domain.ConversionState{Pair: pair, Status: domain.StatusReady, Rate: 83.0, Generation: 1}
		})
		engine.On("Flush").Run(func(mock.Arguments) {
			suite.record(fmt.Sprintf("flush:%d", n))
		}).Return()
		mu.Lock()
		suite.engines = append(suite.engines, engine)
		mu.Unlock()
		return engine
	}
	suite.service = services.NewSessionService(suite.preferences, factory, suite.metrics)
}

func (suite *SessionServiceTestSuite) TestOpenSession_SelectsDefaultPair() {
	prefs := &domain.Preferences{UserID: "u1", BaseCurrency: "EUR", TargetCurrency: "GBP"}
	suite.preferences.On("GetPreferences", suite.ctx, "u1").Return(prefs, nil).Once()

	gotPrefs, state, err := suite.service.OpenSession(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(prefs, gotPrefs)
	suite.Equal(domain.CurrencyPair{From: "EUR", To: "GBP"}, state.Pair)
	suite.Equal(domain.StatusReady, state.Status)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.ActiveSessions))

	engine, err := suite.service.LookupEngine("u1")
	suite.Require().NoError(err)
	suite.Same(suite.engines[0], engine)
}

func (suite *SessionServiceTestSuite) TestOpenSession_ReplacesPreviousEngine() {
	defaults := domain.DefaultPreferences("u1")
	suite.preferences.On("GetPreferences", suite.ctx, "u1").Return(&defaults, nil).Twice()

	_, _, err := suite.service.OpenSession(suite.ctx, "u1")
	suite.Require().NoError(err)
	_, state, err := suite.service.OpenSession(suite.ctx, "u1")
	suite.Require().NoError(err)

	suite.Equal(domain.CurrencyPair{From: "USD", To: "INR"}, state.Pair)
	suite.Require().Len(suite.engines, 2)
	suite.engines[0].AssertCalled(suite.T(), "Flush")
	suite.Equal([]string{"select:1", "flush:1", "select:2"}, suite.events)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.ActiveSessions))

	engine, err := suite.service.LookupEngine("u1")
	suite.Require().NoError(err)
	suite.Same(suite.engines[1], engine)
}

func (suite *SessionServiceTestSuite) TestOpenSession_PreferenceFailure() {
	suite.preferences.On("GetPreferences", suite.ctx, "u1").Return(nil, apperrors.ErrPersistence).Once()

	prefs, _, err := suite.service.OpenSession(suite.ctx, "u1")

	suite.Nil(prefs)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Zero(suite.built.Load())
	_, err = suite.service.LookupEngine("u1")
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *SessionServiceTestSuite) TestOpenSession_EmptyUser() {
	_, _, err := suite.service.OpenSession(suite.ctx, "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.preferences.AssertNotCalled(suite.T(), "GetPreferences", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestCloseSession_FlushesAndDrops() {
	defaults := domain.DefaultPreferences("u1")
	suite.preferences.On("GetPreferences", suite.ctx, "u1").Return(&defaults, nil).Once()
	_, _, err := suite.service.OpenSession(suite.ctx, "u1")
	suite.Require().NoError(err)

	err = suite.service.CloseSession(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.engines[0].AssertCalled(suite.T(), "Flush")
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.ActiveSessions))
	_, err = suite.service.LookupEngine("u1")
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestCloseSession_Unknown() {
	err := suite.service.CloseSession(suite.ctx, "nobody")

	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *SessionServiceTestSuite) TestCloseAllSessions() {
	for _, userID := range []string{"u1", "u2"} {
		defaults := domain.DefaultPreferences(userID)
		suite.preferences.On("GetPreferences", suite.ctx, userID).Return(&defaults, nil).Once()
		_, _, err := suite.service.OpenSession(suite.ctx, userID)
		suite.Require().NoError(err)
	}

	closed := suite.service.CloseAllSessions(suite.ctx)

	suite.Equal(2, closed)
	for _, engine := range suite.engines {
		engine.AssertCalled(suite.T(), "Flush")
	}
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.ActiveSessions))
	_, err := suite.service.LookupEngine("u2")
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *SessionServiceTestSuite) TestEngine_OpensLazilyOnce() {
	defaults := domain.DefaultPreferences("u1")
	suite.preferences.On("GetPreferences", mock.Anything, "u1").Return(&defaults, nil).Once()

	var wg sync.WaitGroup
	results := make([]portssvc.ConversionEngine, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine, err := suite.service.Engine(suite.ctx, "u1")
			suite.NoError(err)
			results[i] = engine
		}(i)
	}
	wg.Wait()

	suite.Equal(int32(1), suite.built.Load())
	for _, engine := range results {
		suite.Same(suite.engines[0], engine)
	}
	suite.preferences.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestEngine_SharedOpenIgnoresCallerCancellation() {
	defaults := domain.DefaultPreferences("u1")
	liveCtx := mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return ctx.Err() == nil && hasDeadline
	})
	suite.preferences.On("GetPreferences", liveCtx, "u1").Return(&defaults, nil).Once()

	canceled, cancel := context.WithCancel(suite.ctx)
	cancel()
	engine, err := suite.service.Engine(canceled, "u1")

	suite.Require().NoError(err)
	suite.Same(suite.engines[0], engine)
	suite.preferences.AssertExpectations(suite.T())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
