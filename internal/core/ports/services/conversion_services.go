package services

import (
	"context"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// ConversionEngine keeps the active rate for one user's selected pair.
type ConversionEngine interface {
	// SelectPair fetches a rate for pair and returns the resulting state.
	// A response for a pair that is no longer selected is discarded.
	SelectPair(ctx context.Context, pair domain.CurrencyPair) domain.ConversionState

	// Convert applies the active rate to req and records the result in the background.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)

	// State returns a snapshot of the engine.
	State() domain.ConversionState

	// Flush blocks until background writes have finished.
	Flush()
}

// SessionSvc manages the per-user conversion context between sign-in and sign-out.
type SessionSvc interface {
	// OpenSession creates the user's engine with the default pair selected.
	OpenSession(ctx context.Context, userID string) (*domain.Preferences, domain.ConversionState, error)

	// CloseSession flushes and drops the user's engine.
	CloseSession(ctx context.Context, userID string) error

	// Engine returns the user's engine, opening a session if none exists.
	Engine(ctx context.Context, userID string) (ConversionEngine, error)

	// CloseAllSessions flushes and drops every engine, returning how many were open.
	CloseAllSessions(ctx context.Context) int

	// LookupEngine returns the open engine or apperrors.ErrSessionNotFound.
	LookupEngine(userID string) (ConversionEngine, error)
}
