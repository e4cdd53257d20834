package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// SlotKeyPrefix prefixes the fallback rate slot of each user.
const SlotKeyPrefix = "lastRate:"

const defaultWriteTimeout = 10 * time.Second

// Accepted amounts have at most maxAmountScale fractional digits and
// maxAmountDigits integer digits.
const (
	maxAmountScale  = 18
	maxAmountDigits = 30
)

// Background write targets, as labelled in metrics.
const (
	writeTargetCache   = "cache"
	writeTargetHistory = "history"
)

type conversionEngine struct {
	BaseService
	userID       string
	slotKey      string
	provider     portssvc.RateProvider
	slots        portsrepo.RateSlotStore
	history      portssvc.HistoryRecorder
	metrics      *metrics.ConversionMetrics
	writeTimeout time.Duration
	now          func() time.Time

	mu    sync.Mutex
	state domain.ConversionState

	// slotMu serializes cache writes; lastWrittenGen keeps an older
	// selection from overwriting a newer one.
	slotMu         sync.Mutex
	lastWrittenGen uint64

	pending sync.WaitGroup
}

// EngineOption is a functional option for configuring a conversion engine
type EngineOption func(*conversionEngine)

// WithEngineMetrics sets the metrics the engine reports to.
func WithEngineMetrics(m *metrics.ConversionMetrics) EngineOption {
	return func(e *conversionEngine) {
		e.metrics = m
	}
}

// WithWriteTimeout bounds each background cache or history write.
func WithWriteTimeout(d time.Duration) EngineOption {
	return func(e *conversionEngine) {
		if d > 0 {
			e.writeTimeout = d
		}
	}
}

// WithClock replaces time.Now, used in tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *conversionEngine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewConversionEngine creates the engine of one user. history may be nil, in
// which case conversions are not recorded.
func NewConversionEngine(
	userID string,
	provider portssvc.RateProvider,
	slots portsrepo.RateSlotStore,
	history portssvc.HistoryRecorder,
	options ...EngineOption,
) portssvc.ConversionEngine {
	e := &conversionEngine{
		userID:       userID,
		slotKey:      SlotKeyPrefix + userID,
		provider:     provider,
		slots:        slots,
		history:      history,
		writeTimeout: defaultWriteTimeout,
		now:          time.Now,
	}
	for _, option := range options {
		option(e)
	}
	e.state = domain.ConversionState{Status: domain.StatusUnavailable, UpdatedAt: e.now()}
	return e
}

// SelectPair starts a new selection and resolves its rate. Only the most recent
// selection may change the active rate.
func (e *conversionEngine) SelectPair(ctx context.Context, pair domain.CurrencyPair) domain.ConversionState {
	e.mu.Lock()
	gen := e.state.Generation + 1
	e.state = domain.ConversionState{
		Pair:       pair,
		Status:     domain.StatusFetching,
		Generation: gen,
		UpdatedAt:  e.now(),
	}
	e.mu.Unlock()

	logger := e.GetLogger(ctx).With(
		slog.String("pair", pair.String()),
		slog.Uint64("generation", gen),
	)

	table, err := e.provider.FetchLatestRates(ctx, pair.From)
	if err == nil {
		if rate, ok := table.Lookup(pair.To); ok && rate > 0 {
			return e.applyFresh(ctx, gen, pair, rate)
		}
		err = fmt.Errorf("%w: target %s missing from table", apperrors.ErrMalformedResponse, pair.To)
	}
	logger.Warn("Live rate unavailable, trying cached rate", slog.String("error", err.Error()))

	return e.applyFallback(ctx, gen, pair)
}

func (e *conversionEngine) applyFresh(ctx context.Context, gen uint64, pair domain.CurrencyPair, rate float64) domain.ConversionState {
	e.mu.Lock()
	if e.state.Generation != gen {
		snapshot := e.state
		e.mu.Unlock()
		e.metrics.RecordFetch(metrics.OutcomeDiscarded)
		e.LogDebug(ctx, "Discarding superseded rate", slog.String("pair", pair.String()), slog.Uint64("generation", gen))
		return snapshot
	}
	now := e.now()
	e.state.Status = domain.StatusReady
	e.state.Rate = rate
	e.state.Stale = false
	e.state.UpdatedAt = now
	snapshot := e.state
	e.mu.Unlock()

	e.metrics.RecordFetch(metrics.OutcomeFresh)
	e.writeCachedRate(ctx, gen, domain.CachedRate{Pair: pair, Rate: rate, StoredAt: now})
	return snapshot
}

func (e *conversionEngine) applyFallback(ctx context.Context, gen uint64, pair domain.CurrencyPair) domain.ConversionState {
	cached, err := e.slots.GetCachedRate(ctx, e.slotKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		e.LogError(ctx, err, "Failed to read cached rate", slog.String("slot", e.slotKey))
	}

	e.mu.Lock()
	if e.state.Generation != gen {
		snapshot := e.state
		e.mu.Unlock()
		e.metrics.RecordFetch(metrics.OutcomeDiscarded)
		return snapshot
	}
	e.state.UpdatedAt = e.now()
	if err == nil && cached != nil && cached.ValidFor(pair) {
		e.state.Status = domain.StatusReady
		e.state.Rate = cached.Rate
		e.state.Stale = true
	} else {
		e.state.Status = domain.StatusUnavailable
		e.state.Rate = 0
		e.state.Stale = false
	}
	snapshot := e.state
	e.mu.Unlock()

	if snapshot.Status == domain.StatusReady {
		e.metrics.RecordFetch(metrics.OutcomeFallback)
		e.LogInfo(ctx, "Serving cached rate", slog.String("pair", pair.String()), slog.Time("stored_at", cached.StoredAt))
	} else {
		e.metrics.RecordFetch(metrics.OutcomeUnavailable)
		e.LogWarn(ctx, "No rate available for pair", slog.String("pair", pair.String()))
	}
	return snapshot
}

// writeCachedRate overwrites the fallback slot on a detached goroutine.
func (e *conversionEngine) writeCachedRate(ctx context.Context, gen uint64, value domain.CachedRate) {
	logger := e.GetLogger(ctx)
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.writeTimeout)
		defer cancel()

		e.slotMu.Lock()
		defer e.slotMu.Unlock()
		if gen < e.lastWrittenGen {
			return
		}
		if err := e.slots.SetCachedRate(writeCtx, e.slotKey, value); err != nil {
			e.metrics.RecordWriteFailure(writeTargetCache)
			logger.Error("Failed to persist cached rate",
				slog.String("error", err.Error()),
				slog.String("slot", e.slotKey),
			)
			return
		}
		e.lastWrittenGen = gen
	}()
}

// Convert applies the active rate to the request amount. When the request names
// a different pair, that pair is selected first.
func (e *conversionEngine) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount %q must be a non-negative number", apperrors.ErrInvalidInput, req.Amount)
	}
	if exp := int(amount.Exponent()); exp < -maxAmountScale || amount.NumDigits()+exp > maxAmountDigits {
		return nil, fmt.Errorf("%w: amount %q is out of range", apperrors.ErrInvalidInput, req.Amount)
	}
	pair := domain.CurrencyPair{From: req.From, To: req.To}
	if !pair.From.Valid() || !pair.To.Valid() {
		return nil, fmt.Errorf("%w: unsupported currency pair %s", apperrors.ErrInvalidInput, pair)
	}

	state := e.State()
	if state.Pair != pair {
		state = e.SelectPair(ctx, pair)
	}
	if state.Pair != pair || state.Status != domain.StatusReady {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, pair)
	}

	result := &domain.ConversionResult{
		UserID:          e.userID,
		Amount:          amount,
		From:            pair.From,
		To:              pair.To,
		Rate:            state.Rate,
		ConvertedAmount: amount.Mul(decimal.NewFromFloat(state.Rate)).Round(2),
		Stale:           state.Stale,
		Timestamp:       e.now(),
	}
	e.metrics.RecordConversion(result.Stale)
	e.recordHistory(ctx, *result)

	return result, nil
}

// recordHistory appends the result to the history store on a detached goroutine.
func (e *conversionEngine) recordHistory(ctx context.Context, result domain.ConversionResult) {
	if e.history == nil {
		return
	}
	logger := e.GetLogger(ctx)
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.writeTimeout)
		defer cancel()

		if err := e.history.RecordConversion(writeCtx, result); err != nil {
			e.metrics.RecordWriteFailure(writeTargetHistory)
			logger.Error("Failed to record conversion history",
				slog.String("error", err.Error()),
				slog.String("pair", result.From.String()+"/"+result.To.String()),
			)
		}
	}()
}

func (e *conversionEngine) State() domain.ConversionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *conversionEngine) Flush() {
	e.pending.Wait()
}
