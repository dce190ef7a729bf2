// Package scoring maps free-text answers to scores in [0, 1], either by
// semantic similarity against an expected answer or by counting category
// members in a comma-separated list.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"cogtest/internal/embedding"
	"cogtest/internal/taxonomy"
)

// Scorer evaluates answers. Both collaborators are injected: the embedding
// engine for similarity questions, the lexicon for category questions.
type Scorer struct {
	engine embedding.Engine
	lex    taxonomy.Lexicon
}

func New(engine embedding.Engine, lex taxonomy.Lexicon) *Scorer {
	return &Scorer{engine: engine, lex: lex}
}

// Similarity scores an answer against an expected reference string by cosine
// similarity of their sentence embeddings, clamped to [0, 1] and rounded to
// two decimals. An embedding failure propagates; there is no fallback
// scoring path for text questions.
func (s *Scorer) Similarity(ctx context.Context, answer, expected string) (float64, error) {
	vecs, err := s.engine.EmbedBatch(ctx, []string{answer, expected})
	if err != nil {
		return 0, fmt.Errorf("similarity scoring: %w", err)
	}
	sim, err := embedding.CosineSimilarity(vecs[0], vecs[1])
	if err != nil {
		return 0, fmt.Errorf("similarity scoring: %w", err)
	}
	// Cosine ranges over [-1, 1]; scores are defined on [0, 1].
	return round2(math.Min(math.Max(sim, 0), 1)), nil
}

// CategoryScore splits a comma-separated answer into trimmed, lower-cased
// tokens, counts those that belong to the category, and returns
// min(count, target)/target rounded to two decimals.
//
// Tokens are tested independently: a correct word repeated three times counts
// three times, up to the cap. Deduplication is deliberately not applied so
// the recorded behavior stays stable.
func (s *Scorer) CategoryScore(answer, category string, target int) float64 {
	matched := 0
	for _, token := range strings.Split(answer, ",") {
		if taxonomy.IsMember(s.lex, token, category) {
			matched++
		}
	}
	if matched > target {
		matched = target
	}
	return round2(float64(matched) / float64(target))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
