package solver

import (
	"io"
	"time"
)

// DefaultSpecialistThreshold is the confidence a specialist answer
// must meet or exceed to shortcut the core pipeline.
const DefaultSpecialistThreshold = 0.9

// Config bounds one Solve call. Construct with DefaultConfig and
// override via With* options.
type Config struct {
	MaxDepth          int
	MaxNodes          int
	MaxTotalPixels    int
	MaxConstructSide  int
	MaxPieceSide      int
	MaxPieces         int
	MaxCandidates     int
	ComposeIterations int

	ComplexityPenalty float64
	MaxAnswers        int
	TimeLimit         time.Duration

	EnableLogging bool
	LogSink       io.Writer

	Specialists         []SpecialistSolver
	SpecialistThreshold float64
}

// DefaultConfig returns the default caps.
func DefaultConfig() Config {
	return Config{
		MaxDepth:            20,
		MaxNodes:            100_000,
		MaxTotalPixels:       8000,
		MaxConstructSide:    100,
		MaxPieceSide:        40,
		MaxPieces:           100_000,
		MaxCandidates:       1000,
		ComposeIterations:   10,
		ComplexityPenalty:   0.01,
		MaxAnswers:          3,
		TimeLimit:           60 * time.Second,
		SpecialistThreshold: DefaultSpecialistThreshold,
	}
}

// Option mutates a Config built from DefaultConfig.
type Option func(*Config)

// New builds a Config from DefaultConfig with opts applied in order.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth overrides the DAG depth cap.
func WithMaxDepth(d int) Option { return func(c *Config) { c.MaxDepth = d } }

// WithTimeLimit overrides the wall-clock cap per DAG build.
func WithTimeLimit(d time.Duration) Option { return func(c *Config) { c.TimeLimit = d } }

// WithMaxAnswers overrides the public top-k bound.
func WithMaxAnswers(n int) Option { return func(c *Config) { c.MaxAnswers = n } }

// WithLogging enables structured logging to sink.
func WithLogging(sink io.Writer) Option {
	return func(c *Config) {
		c.EnableLogging = true
		c.LogSink = sink
	}
}

// WithSpecialists registers specialist solvers the orchestrator
// consults before running the core pipeline.
func WithSpecialists(specialists ...SpecialistSolver) Option {
	return func(c *Config) { c.Specialists = specialists }
}

// WithSpecialistThreshold overrides the confidence a specialist answer
// must meet to shortcut the core pipeline.
func WithSpecialistThreshold(t float64) Option {
	return func(c *Config) { c.SpecialistThreshold = t }
}
