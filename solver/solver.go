package solver

import (
	"fmt"
	"sort"

	"github.com/arcdag/solver/arctask"
	"github.com/arcdag/solver/candidate"
	"github.com/arcdag/solver/compose"
	"github.com/arcdag/solver/dag"
	"github.com/arcdag/solver/grid"
	"github.com/arcdag/solver/internal/solvelog"
	"github.com/arcdag/solver/piece"
	"github.com/arcdag/solver/score"
	"github.com/arcdag/solver/transform"
	"github.com/rs/zerolog"
)

// Solve ingests training and test grids, resolves specialists and the
// core DAG pipeline per test input, and returns one Answer per test
// input in the same order. The only returned error is ErrInvalidInput,
// at ingest; every other failure mode degrades to an empty or partial
// Answer for the affected test input.
func Solve(training []arctask.Pair, tests []arctask.Grid, cfg Config) ([]arctask.Answer, error) {
	trainingInputs := make([]grid.Grid, len(training))
	trainingOutputs := make([]grid.Grid, len(training))
	for i, p := range training {
		in, err := arctask.ToGrid(p.Input)
		if err != nil {
			return nil, fmt.Errorf("%w: training pair %d input: %v", ErrInvalidInput, i, err)
		}
		out, err := arctask.ToGrid(p.Output)
		if err != nil {
			return nil, fmt.Errorf("%w: training pair %d output: %v", ErrInvalidInput, i, err)
		}
		trainingInputs[i] = in
		trainingOutputs[i] = out
	}
	testGrids, err := arctask.ToGrids(tests)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logger := solvelog.New(cfg.LogSink, cfg.EnableLogging)

	answers := make([]arctask.Answer, len(testGrids))
	for t, testGrid := range testGrids {
		answers[t] = solveOne(training, trainingInputs, trainingOutputs, testGrid, cfg, logger)
	}
	return answers, nil
}

// solveOne resolves a single test input: specialists first (with a
// high-confidence shortcut), then the core pipeline, pooled and scored
// together otherwise.
func solveOne(
	training []arctask.Pair,
	trainingInputs, trainingOutputs []grid.Grid,
	testGrid grid.Grid,
	cfg Config,
	logger zerolog.Logger,
) arctask.Answer {
	wireTest := arctask.FromGrid(testGrid)

	var specialistGrids []grid.Grid
	var specialistConf []float64
	shortcut := false

	for _, sp := range cfg.Specialists {
		if sp == nil || !sp.CanSolve(training, wireTest) {
			continue
		}
		grids, err := sp.Solve(training, wireTest)
		if err != nil {
			logger.Warn().Err(err).Msg("specialist solve failed")
			continue
		}
		for i, wg := range grids {
			g, err := arctask.ToGrid(wg)
			if err != nil {
				continue
			}
			conf := sp.Confidence(i)
			specialistGrids = append(specialistGrids, g)
			specialistConf = append(specialistConf, conf)
			if conf >= cfg.SpecialistThreshold {
				shortcut = true
			}
		}
	}

	if shortcut {
		return specialistAnswer(specialistGrids, specialistConf, cfg.MaxAnswers)
	}

	coreCands := runCore(trainingInputs, trainingOutputs, testGrid, cfg, logger)

	pool := make([]*candidate.Candidate, 0, len(coreCands)+len(specialistGrids))
	for _, g := range specialistGrids {
		images := append(append([]grid.Grid(nil), trainingOutputs...), g)
		pool = append(pool, candidate.New(images))
	}
	pool = append(pool, coreCands...)

	scored, err := score.Score(pool, training, score.Config{
		MaxAnswers:        cfg.MaxAnswers,
		ComplexityPenalty: cfg.ComplexityPenalty,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("scoring failed")
		return arctask.Answer{}
	}

	grids := make([]arctask.Grid, len(scored))
	for i, c := range scored {
		grids[i] = arctask.FromGrid(c.TestAnswer())
	}
	return arctask.Answer{Grids: grids}
}

// runCore builds one DAG per training pair plus one for the test
// input, extracts pieces, composes candidates, and returns them
// unscored. A panic anywhere in this pipeline is an InternalInvariant
// violation: it is contained here, logged, and surfaced as no
// candidates rather than propagated.
func runCore(trainingInputs, trainingOutputs []grid.Grid, testGrid grid.Grid, cfg Config, logger zerolog.Logger) (cands []*candidate.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Interface("panic", r).Msg("internal invariant violated, aborting solve")
			cands = nil
		}
	}()

	lib := transform.Default()
	dagCfg := dag.Config{
		MaxDepth:         cfg.MaxDepth,
		MaxNodes:         cfg.MaxNodes,
		MaxTotalPixels:   cfg.MaxTotalPixels,
		MaxConstructSide: cfg.MaxConstructSide,
		MaxPieceSide:     cfg.MaxPieceSide,
		TimeLimit:        cfg.TimeLimit,
	}

	dags := make([]*dag.DAG, 0, len(trainingInputs)+1)
	for i, in := range trainingInputs {
		d, err := dag.New(dagCfg, lib)
		if err != nil {
			logger.Warn().Err(err).Msg("dag construction failed")
			return nil
		}
		inState, err := grid.NewState([]grid.Grid{in}, false, 0, cfg.MaxTotalPixels)
		if err != nil {
			return nil
		}
		d.AddRoot(inState)
		// A second root seeded from the known output enriches this
		// DAG's own reachable-state space (nodes from either root
		// hash-cons together); extraction only seeds tuples from root
		// indices every DAG shares, and the test DAG has no output
		// root, so this one never itself becomes piece material.
		if outState, err := grid.NewState([]grid.Grid{trainingOutputs[i]}, false, 0, cfg.MaxTotalPixels); err == nil {
			d.AddRoot(outState)
		}
		if err := d.Build(); err != nil {
			logger.Warn().Err(err).Msg("dag build failed")
			return nil
		}
		logger.Debug().Int("pair", i).Int("nodes", d.Len()).Msg("dag built")
		dags = append(dags, d)
	}

	testDAG, err := dag.New(dagCfg, lib)
	if err != nil {
		return nil
	}
	testState, err := grid.NewState([]grid.Grid{testGrid}, false, 0, cfg.MaxTotalPixels)
	if err != nil {
		return nil
	}
	testDAG.AddRoot(testState)
	if err := testDAG.Build(); err != nil {
		logger.Warn().Err(err).Msg("test dag build failed")
		return nil
	}
	logger.Debug().Int("nodes", testDAG.Len()).Msg("test dag built")
	dags = append(dags, testDAG)

	col, err := piece.Extract(dags, piece.Config{MaxPieces: cfg.MaxPieces, MaxDepth: cfg.MaxDepth})
	if err != nil {
		logger.Warn().Err(err).Msg("piece extraction failed")
		return nil
	}
	logger.Debug().Int("pieces", len(col.Pieces)).Msg("pieces extracted")

	predicted := predictOutputSize(trainingOutputs, testGrid)
	slots := make([]compose.SlotSpec, len(trainingOutputs)+1)
	for i, out := range trainingOutputs {
		slots[i] = compose.SlotSpec{Width: out.Width, Height: out.Height, Target: append([]int8(nil), out.Pixels...)}
	}
	slots[len(trainingOutputs)] = compose.SlotSpec{Width: predicted.width, Height: predicted.height}

	candidates, err := compose.Compose(col, slots, compose.Config{MaxIterations: cfg.ComposeIterations})
	if err != nil {
		logger.Warn().Err(err).Msg("composition failed")
		return nil
	}
	if cfg.MaxCandidates > 0 && len(candidates) > cfg.MaxCandidates {
		candidates = candidates[:cfg.MaxCandidates]
	}
	logger.Debug().Int("candidates", len(candidates)).Msg("candidates composed")
	return candidates
}

type predictedSize struct{ width, height int }

// predictOutputSize is a deliberately small heuristic: if every
// training output shares a size, predict that; otherwise fall back to
// the test input's own size. It only shapes the composition canvas —
// candidates are never rejected by it.
func predictOutputSize(outputs []grid.Grid, test grid.Grid) predictedSize {
	if len(outputs) == 0 {
		return predictedSize{test.Width, test.Height}
	}
	w, h := outputs[0].Width, outputs[0].Height
	for _, o := range outputs[1:] {
		if o.Width != w || o.Height != h {
			return predictedSize{test.Width, test.Height}
		}
	}
	return predictedSize{w, h}
}

// specialistAnswer builds an Answer directly from specialist grids,
// sorted by confidence descending, deduplicated by pixel content, and
// truncated to maxAnswers, bypassing the core pipeline entirely.
func specialistAnswer(grids []grid.Grid, conf []float64, maxAnswers int) arctask.Answer {
	if maxAnswers <= 0 || maxAnswers > score.DefaultMaxAnswers {
		maxAnswers = score.DefaultMaxAnswers
	}
	order := make([]int, len(grids))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return conf[order[i]] > conf[order[j]] })

	out := make([]arctask.Grid, 0, maxAnswers)
	seen := make(map[string]bool)
	for _, idx := range order {
		if len(out) >= maxAnswers {
			break
		}
		key := gridKey(grids[idx])
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, arctask.FromGrid(grids[idx]))
	}
	return arctask.Answer{Grids: out}
}

func gridKey(g grid.Grid) string {
	buf := make([]byte, 0, len(g.Pixels)+4)
	buf = append(buf, byte(g.Width), byte(g.Width>>8), byte(g.Height), byte(g.Height>>8))
	for _, p := range g.Pixels {
		buf = append(buf, byte(p))
	}
	return string(buf)
}
