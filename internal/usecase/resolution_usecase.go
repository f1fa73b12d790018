package usecase

import (
	"context"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
)

// matchThreshold is the minimum token-sort similarity (0-100) a candidate
// must reach against a registry name.
const matchThreshold = 70

// ResolutionUseCase resolves free text to a known location. It tries an
// ordered list of strategies (entities, n-grams longest-first, whole text)
// and stops at the first candidate clearing the threshold. An unresolved
// query is a value, never an error.
type ResolutionUseCase struct {
	registry  *LocationRegistry
	extractor *CandidateExtractor
	logger    *zap.Logger
}

func NewResolutionUseCase(
	registry *LocationRegistry,
	extractor *CandidateExtractor,
	logger *zap.Logger,
) *ResolutionUseCase {
	return &ResolutionUseCase{
		registry:  registry,
		extractor: extractor,
		logger:    logger,
	}
}

type resolveStage struct {
	name  string
	spans []string
}

// Resolve runs the strategy chain over a stable registry snapshot.
func (uc *ResolutionUseCase) Resolve(ctx context.Context, text string) domain.ResolvedLocation {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ResolvedLocation{}
	}

	names := uc.registry.Names(ctx)
	if len(names) == 0 {
		uc.logger.Warn("Location registry is empty, nothing to match against")
		return domain.ResolvedLocation{}
	}

	candidates := uc.extractor.Extract(text)
	stages := []resolveStage{
		{name: "entity", spans: spansBySource(candidates, domain.CandidateEntity)},
		{name: "ngram", spans: spansBySource(candidates, domain.CandidateNgram)},
		{name: "full-text", spans: []string{text}},
	}

	for _, stage := range stages {
		for _, span := range stage.spans {
			// Alias hits rewrite the span before fuzzy matching, so an
			// informal name scores as its canonical form.
			if target, ok := uc.registry.LookupAlias(ctx, span); ok {
				span = target
			}

			name, score := bestMatch(span, names)
			if score < matchThreshold {
				continue
			}

			uc.logger.Debug("Location resolved",
				zap.String("strategy", stage.name),
				zap.String("candidate", span),
				zap.String("matched_name", name),
				zap.Int("score", score))

			return domain.ResolvedLocation{
				MatchedName: name,
				Confidence:  float64(score),
				Sublocation: uc.extractor.DetectDirection(text),
			}
		}
	}

	uc.logger.Debug("Location unresolved", zap.String("text", text))
	return domain.ResolvedLocation{}
}

func spansBySource(candidates []domain.LocationCandidate, source domain.CandidateSource) []string {
	spans := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Source == source {
			spans = append(spans, c.Text)
		}
	}
	return spans
}

// bestMatch scores a span against every registry name with a
// token-order-insensitive ratio and returns the best one.
func bestMatch(span string, names []string) (string, int) {
	bestName, bestScore := "", 0
	for _, name := range names {
		score := fuzzy.TokenSortRatio(span, name)
		if score > bestScore {
			bestName, bestScore = name, score
		}
	}
	return bestName, bestScore
}
