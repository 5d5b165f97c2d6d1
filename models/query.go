package models

// QueryRequest represents a single legal question submitted by a user
type QueryRequest struct {
	Query        string       `json:"query"`
	Category     Category     `json:"category"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	State        Jurisdiction `json:"state,omitempty"` // Accepted alias for jurisdiction
}

// EffectiveJurisdiction returns the jurisdiction, falling back to the state alias
func (r QueryRequest) EffectiveJurisdiction() Jurisdiction {
	if r.Jurisdiction != "" {
		return r.Jurisdiction
	}
	return r.State
}

// AnalysisResponse is the answer to a query plus the citations found in it.
// References is a set; the slice is sorted for stable display only.
type AnalysisResponse struct {
	Answer     string   `json:"answer"`
	References []string `json:"references"`
}
