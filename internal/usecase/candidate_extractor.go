package usecase

import (
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
)

// entityLabels are the NER labels treated as potential place names.
var entityLabels = map[string]struct{}{
	"GPE": {},
	"LOC": {},
	"FAC": {},
	"ORG": {},
}

const maxNgramLen = 3

// CandidateExtractor turns free text into an ordered list of location
// candidates: named entities first, then word n-grams longest-first. The
// resolver tries them in order and stops at the first match.
type CandidateExtractor struct {
	logger *zap.Logger
}

func NewCandidateExtractor(logger *zap.Logger) *CandidateExtractor {
	return &CandidateExtractor{logger: logger}
}

// Extract produces the candidate list for one query. NER failures degrade
// to the n-gram tier alone.
func (e *CandidateExtractor) Extract(text string) []domain.LocationCandidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []domain.LocationCandidate

	add := func(span string, source domain.CandidateSource, length int) {
		key := strings.ToLower(span)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, domain.LocationCandidate{
			Text:   span,
			Source: source,
			Length: length,
		})
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		e.logger.Warn("NER tagging failed, falling back to n-grams", zap.Error(err))
	} else {
		for _, ent := range doc.Entities() {
			if _, ok := entityLabels[ent.Label]; !ok {
				continue
			}
			span := strings.TrimSpace(ent.Text)
			if span == "" {
				continue
			}
			add(span, domain.CandidateEntity, len(strings.Fields(span)))
		}
	}

	words := tokenize(text)
	for n := maxNgramLen; n >= 1; n-- {
		for i := 0; i+n <= len(words); i++ {
			add(strings.Join(words[i:i+n], " "), domain.CandidateNgram, n)
		}
	}

	return candidates
}

// DetectDirection finds a directional hint ("north of delhi", "s delhi")
// and returns its canonical form, or "" when the query has none.
func (e *CandidateExtractor) DetectDirection(text string) string {
	for _, w := range tokenize(text) {
		if dir, ok := domain.Directions[w]; ok {
			return dir
		}
	}
	return ""
}

// tokenize lowercases, splits on whitespace and strips boundary punctuation
// from each token. Inner punctuation survives, so "north-east" is one token
// and never a direction hit.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
