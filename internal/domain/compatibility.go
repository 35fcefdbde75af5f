package domain

// CompatibilityScore is the derived result of comparing a subject profile
// against a candidate profile. It is computed on demand and never persisted.
type CompatibilityScore struct {
	UserID             int      `json:"user_id"`
	Score              int      `json:"score"`
	MatchingFactors    []string `json:"matching_factors"`
	ConflictingFactors []string `json:"conflicting_factors"`
}
