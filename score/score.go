package score

import (
	"sort"

	"github.com/arcdag/solver/arctask"
	"github.com/arcdag/solver/candidate"
	"github.com/arcdag/solver/grid"
)

// DefaultMaxAnswers is the public top-k bound.
const DefaultMaxAnswers = 3

// DefaultComplexityPenalty is the default weight applied to a
// candidate's prior when computing its score.
const DefaultComplexityPenalty = 0.01

// Config bounds the scorer's output.
type Config struct {
	// MaxAnswers caps the returned answer count, clamped to [1, 3];
	// <=0 or >3 falls back to DefaultMaxAnswers.
	MaxAnswers int
	// ComplexityPenalty weights the prior (max depth + piece count*1e-3) in
	// score = matches - prior*ComplexityPenalty. <=0 falls back to
	// DefaultComplexityPenalty.
	ComplexityPenalty float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MaxAnswers: DefaultMaxAnswers, ComplexityPenalty: DefaultComplexityPenalty}
}

// Score rejects invalid candidates, scores the rest against training,
// sorts by score descending (ties broken by lower complexity first),
// deduplicates by the proposed test answer's pixels, and truncates to
// cfg.MaxAnswers. Every surviving candidate has its Score field set.
func Score(cands []*candidate.Candidate, training []arctask.Pair, cfg Config) ([]*candidate.Candidate, error) {
	maxAnswers := cfg.MaxAnswers
	if maxAnswers <= 0 || maxAnswers > DefaultMaxAnswers {
		maxAnswers = DefaultMaxAnswers
	}
	penalty := cfg.ComplexityPenalty
	if penalty <= 0 {
		penalty = DefaultComplexityPenalty
	}

	outputs := make([]grid.Grid, len(training))
	for i, p := range training {
		g, err := arctask.ToGrid(p.Output)
		if err != nil {
			return nil, err
		}
		outputs[i] = g
	}

	valid := make([]*candidate.Candidate, 0, len(cands))
	for _, c := range cands {
		if len(c.Images) == 0 {
			continue
		}
		answer := c.TestAnswer()
		if !validAnswer(answer) {
			continue
		}

		matches := 0
		trainingSlots := c.TrainingOutputs()
		for i, out := range outputs {
			if i < len(trainingSlots) && trainingSlots[i].EqualPixels(out) {
				matches++
			}
		}
		c.Score = float64(matches) - complexity(c)*penalty
		valid = append(valid, c)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Score != valid[j].Score {
			return valid[i].Score > valid[j].Score
		}
		return complexity(valid[i]) < complexity(valid[j])
	})

	out := make([]*candidate.Candidate, 0, maxAnswers)
	seen := make(map[string]bool)
	for _, c := range valid {
		if len(out) >= maxAnswers {
			break
		}
		key := answerKey(c.TestAnswer())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out, nil
}

// validAnswer enforces the public emission bounds: non-empty, each
// side <= arctask.MaxSide, every pixel in 0..9.
func validAnswer(g grid.Grid) bool {
	if g.Width <= 0 || g.Height <= 0 {
		return false
	}
	if g.Width > arctask.MaxSide || g.Height > arctask.MaxSide {
		return false
	}
	return grid.ValidatePixelRange(g, false) == nil
}

// complexity is the scorer's prior: the largest applied piece depth plus a small
// per-piece penalty, favouring simpler compositions among equal scores.
func complexity(c *candidate.Candidate) float64 {
	return float64(c.MaxDepth) + float64(c.PieceCount)*1e-3
}

// answerKey builds a dedup key from a grid's dimensions and pixels.
func answerKey(g grid.Grid) string {
	buf := make([]byte, 0, len(g.Pixels)+4)
	buf = append(buf, byte(g.Width), byte(g.Width>>8), byte(g.Height), byte(g.Height>>8))
	for _, p := range g.Pixels {
		buf = append(buf, byte(p))
	}
	return string(buf)
}
