package domain

// CandidateSource tells which extraction tier produced a candidate.
type CandidateSource string

const (
	CandidateEntity CandidateSource = "entity"
	CandidateNgram  CandidateSource = "ngram"
)

// LocationCandidate is a text span that may name a known location. Length is
// kept for the longest-first preference of the n-gram tier.
type LocationCandidate struct {
	Text   string
	Source CandidateSource
	Length int
}

// ResolvedLocation is the outcome of one resolution query. An unresolved
// query is a value (empty MatchedName, zero Confidence), never an error.
type ResolvedLocation struct {
	MatchedName string  `json:"matched_name"`
	Confidence  float64 `json:"confidence"`
	Sublocation string  `json:"sublocation,omitempty"`
}

// Resolved reports whether a candidate cleared the match threshold.
func (r ResolvedLocation) Resolved() bool {
	return r.MatchedName != ""
}

// RegistryEntry describes one canonical name in the location registry.
type RegistryEntry struct {
	Name          string `json:"name"`
	IsAliasTarget bool   `json:"is_alias_target"`
}
