package calculation

// Engine bundles the projection components behind a single façade. Every
// operation is a pure function over caller-supplied snapshots; concurrent
// calls need no locking.
type Engine struct {
	Cashflow  *CashflowForecastEngine
	Tax       *ProgressiveTaxEngine
	Estimator *DebtAmortizationEstimator
	Planner   *DebtStrategyPlanner
	Logger    Logger
}

// NewEngine creates an engine with no-op logging.
func NewEngine() *Engine {
	return NewEngineWithLogger(NopLogger{})
}

// NewEngineWithLogger creates an engine that routes diagnostics through the
// given logger.
func NewEngineWithLogger(logger Logger) *Engine {
	estimator := &DebtAmortizationEstimator{Logger: logger}
	return &Engine{
		Cashflow:  &CashflowForecastEngine{Logger: logger},
		Tax:       &ProgressiveTaxEngine{Logger: logger},
		Estimator: estimator,
		Planner: &DebtStrategyPlanner{
			Estimator: estimator,
			Fallback:  FallbackCurrentBalance,
			Logger:    logger,
		},
		Logger: logger,
	}
}
