package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
	"golang.org/x/sync/singleflight"
)

// sessionOpenTimeout bounds a lazy open shared by concurrent requests.
const sessionOpenTimeout = 30 * time.Second

// EngineFactory builds a fresh conversion engine for a user.
type EngineFactory func(userID string) portssvc.ConversionEngine

type sessionService struct {
	BaseService
	preferences portssvc.PreferenceReaderSvc
	newEngine   EngineFactory
	metrics     *metrics.ConversionMetrics

	mu      sync.RWMutex
	engines map[string]portssvc.ConversionEngine
	opening singleflight.Group
}

// NewSessionService creates the registry of per-user conversion engines.
func NewSessionService(preferences portssvc.PreferenceReaderSvc, newEngine EngineFactory, m *metrics.ConversionMetrics) portssvc.SessionSvc {
	return &sessionService{
		preferences: preferences,
		newEngine:   newEngine,
		metrics:     m,
		engines:     make(map[string]portssvc.ConversionEngine),
	}
}

// OpenSession loads the user's preferences and selects their default pair on a
// new engine. An engine left over from a previous session is detached and
// flushed before the new one selects its pair, so its cache writes land first.
func (s *sessionService) OpenSession(ctx context.Context, userID string) (*domain.Preferences, domain.ConversionState, error) {
	if userID == "" {
		return nil, domain.ConversionState{}, apperrors.NewValidationError("user ID is required")
	}

	prefs, err := s.preferences.GetPreferences(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load preferences for session", slog.String("user_id", userID))
		return nil, domain.ConversionState{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	s.mu.Lock()
	previous, existed := s.engines[userID]
	delete(s.engines, userID)
	s.mu.Unlock()
	if existed {
		previous.Flush()
		s.metrics.SessionClosed()
	}

	engine := s.newEngine(userID)
	state := engine.SelectPair(ctx, prefs.DefaultPair())

	s.mu.Lock()
	concurrent, replaced := s.engines[userID]
	s.engines[userID] = engine
	s.mu.Unlock()

	if replaced {
		concurrent.Flush()
	} else {
		s.metrics.SessionOpened()
	}

	s.LogInfo(ctx, "Session opened",
		slog.String("user_id", userID),
		slog.String("pair", state.Pair.String()),
		slog.String("status", string(state.Status)),
	)
	return prefs, state, nil
}

func (s *sessionService) CloseSession(ctx context.Context, userID string) error {
	s.mu.Lock()
	engine, ok := s.engines[userID]
	delete(s.engines, userID)
	s.mu.Unlock()

	if !ok {
		return apperrors.ErrSessionNotFound
	}
	engine.Flush()
	s.metrics.SessionClosed()

	s.LogInfo(ctx, "Session closed", slog.String("user_id", userID))
	return nil
}

// CloseAllSessions is used on shutdown so pending history and cache writes land.
func (s *sessionService) CloseAllSessions(ctx context.Context) int {
	s.mu.Lock()
	engines := s.engines
	s.engines = make(map[string]portssvc.ConversionEngine)
	s.mu.Unlock()

	for _, engine := range engines {
		engine.Flush()
		s.metrics.SessionClosed()
	}
	s.LogInfo(ctx, "All sessions closed", slog.Int("count", len(engines)))
	return len(engines)
}

func (s *sessionService) LookupEngine(userID string) (portssvc.ConversionEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	engine, ok := s.engines[userID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return engine, nil
}

// Engine returns the open engine, opening a session first when needed.
// Concurrent callers for the same user share a single open, which runs detached
// from any one caller's cancellation.
func (s *sessionService) Engine(ctx context.Context, userID string) (portssvc.ConversionEngine, error) {
	if engine, err := s.LookupEngine(userID); err == nil {
		return engine, nil
	}

	v, err, _ := s.opening.Do(userID, func() (any, error) {
		if engine, err := s.LookupEngine(userID); err == nil {
			return engine, nil
		}
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sessionOpenTimeout)
		defer cancel()
		if _, _, err := s.OpenSession(openCtx, userID); err != nil {
			return nil, err
		}
		return s.LookupEngine(userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(portssvc.ConversionEngine), nil
}
