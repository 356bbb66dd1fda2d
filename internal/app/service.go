// Package service exposes the bonus calculator with logging and metrics
// around every call.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/bonus/internal/config"
	"github.com/okian/bonus/internal/domain/bonus"
	"github.com/okian/bonus/internal/domain/model"
	"github.com/okian/bonus/pkg/logger"
	"github.com/okian/bonus/pkg/metrics"
)

// Operation names used in logs and the calculations_total metric.
const (
	OpLevelBonus       = "level_bonus"
	OpPerformanceBonus = "performance_bonus"
	OpSalaryBonus      = "salary_bonus"
)

// Service wraps the pure calculator. It holds no mutable state and is safe
// for concurrent use.
type Service struct {
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager the service records to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Service. Without WithLogger it uses the global logger,
// so logger.Init must have been called.
func New(opts ...Option) *Service {
	s := &Service{
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("bonus")
	}
	return s
}

// FromEnv loads configuration from the environment and builds a Service
// with its own logger at the configured level and metrics registered on
// registry. A nil registry gets a fresh private one. logOpts configure the
// service logger; the global logger is neither used nor changed.
func FromEnv(ctx context.Context, registry prometheus.Registerer, logOpts ...logger.Option) (*Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	// Load has already rejected unknown levels.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m, err := metrics.Register(
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithPrometheusRegistry(registry),
	)
	if err != nil {
		return nil, err
	}

	log := logger.New(append(logOpts, logger.WithLevel(level))...).Named("bonus")
	s := New(WithLogger(log), WithMetrics(m))
	s.logger.Debug(ctx, "bonus service configured",
		logger.String("log_level", cfg.LogLevel),
		logger.Bool("metrics_enabled", cfg.MetricsEnabled),
	)
	return s, nil
}

// LevelBonus returns the level multiplier for level.
func (s *Service) LevelBonus(ctx context.Context, level bonus.Level) (float64, error) {
	v, err := bonus.LevelBonus(level)
	s.observe(ctx, OpLevelBonus, err, logger.Int("level", int(level)))
	return v, err
}

// PerformanceBonus returns the performance multiplier for rating.
func (s *Service) PerformanceBonus(ctx context.Context, rating bonus.Rating) (float64, error) {
	v, err := bonus.PerformanceBonus(rating)
	s.observe(ctx, OpPerformanceBonus, err, logger.Float64("rating", float64(rating)))
	return v, err
}

// SalaryBonus computes the bonus for one employee. Validation errors from the
// calculator are returned unchanged.
func (s *Service) SalaryBonus(ctx context.Context, salary bonus.Salary, level bonus.Level, rating bonus.Rating) (float64, error) {
	return s.calculate(ctx, bonus.Input{Salary: salary, Level: level, Rating: rating})
}

func (s *Service) calculate(ctx context.Context, in bonus.Input) (float64, error) {
	amount, err := bonus.Calculate(in)
	s.observe(ctx, OpSalaryBonus, err,
		logger.Int("salary", int(in.Salary)),
		logger.Int("level", int(in.Level)),
		logger.Float64("rating", float64(in.Rating)),
	)
	if err == nil {
		s.metrics.ObserveBonus(amount)
		s.logger.Debug(ctx, "salary bonus computed", logger.Float64("bonus", amount))
	}
	return amount, err
}

// SalaryBonusValues is SalaryBonus for values whose Go types are not known
// statically. Type mismatches are reported before any range check runs.
func (s *Service) SalaryBonusValues(ctx context.Context, salary, level, rating any) (float64, error) {
	in, err := bonus.ParseInput(salary, level, rating)
	if err != nil {
		s.observe(ctx, OpSalaryBonus, err,
			logger.Any("salary", salary),
			logger.Any("level", level),
			logger.Any("rating", rating),
		)
		return 0, err
	}
	return s.calculate(ctx, in)
}

// Batch evaluates employees in order and returns one outcome per employee.
// A rejected employee does not stop the batch; a cancelled context does, and
// then no outcomes are returned.
func (s *Service) Batch(ctx context.Context, employees []model.Employee) ([]model.Outcome, error) {
	start := time.Now()
	outcomes := make([]model.Outcome, 0, len(employees))
	failed := 0

	for _, e := range employees {
		if err := ctx.Err(); err != nil {
			s.logger.Warn(ctx, "batch cancelled",
				logger.Int("done", len(outcomes)),
				logger.Int("total", len(employees)),
			)
			return nil, fmt.Errorf("context cancelled: %w", err)
		}

		amount, err := s.calculate(ctx, e.Input())
		if err != nil {
			failed++
		}
		outcomes = append(outcomes, model.Outcome{EmployeeID: e.ID, Bonus: amount, Err: err})
	}

	elapsed := time.Since(start)
	s.metrics.ObserveBatch(len(employees), elapsed)
	s.logger.Info(ctx, "batch evaluated",
		logger.Int("employees", len(employees)),
		logger.Int("failed", failed),
		logger.Any("elapsed", elapsed),
	)
	return outcomes, nil
}

// observe records the result of one calculator call.
func (s *Service) observe(ctx context.Context, op string, err error, fields ...logger.Field) {
	if err == nil {
		s.metrics.RecordCalculation(op, metrics.ResultOK)
		return
	}

	s.metrics.RecordCalculation(op, metrics.ResultRejected)
	field, kind := classify(err)
	s.metrics.RecordValidationError(field, kind)

	fields = append(fields,
		logger.String("operation", op),
		logger.String("calculation_id", uuid.NewString()),
		logger.String("field", field),
		logger.String("kind", kind),
		logger.Error(err),
	)
	s.logger.Warn(ctx, "bonus input rejected", fields...)
}

// classify maps a calculator error to metric labels.
func classify(err error) (field, kind string) {
	var rangeErr *bonus.RangeError
	if errors.As(err, &rangeErr) {
		return rangeErr.Field, rangeErr.Kind.String()
	}
	var typeErr *bonus.TypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field, "type_mismatch"
	}
	return "unknown", "unknown"
}
