package services

import (
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/platform/config"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	provider portssvc.RateProvider,
	m *metrics.ConversionMetrics,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Preferences = NewPreferenceService(repos.PreferenceRepo)
	container.History = NewHistoryService(repos.HistoryRepo)
	container.Rates = NewRateQueryService(provider, cfg.HistoryMaxRangeDays)

	// Every session gets its own engine sharing the provider, slot store and history.
	newEngine := func(userID string) portssvc.ConversionEngine {
		return NewConversionEngine(
			userID,
			provider,
			repos.RateSlots,
			container.History,
			WithEngineMetrics(m),
			WithWriteTimeout(cfg.BackgroundWriteTimeout),
		)
	}
	container.Session = NewSessionService(container.Preferences, newEngine, m)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ConversionEngine    = (*conversionEngine)(nil)
	_ portssvc.SessionSvc          = (*sessionService)(nil)
	_ portssvc.HistorySvcFacade    = (*historyService)(nil)
	_ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)
	_ portssvc.RateQuerySvc        = (*rateQueryService)(nil)
)
