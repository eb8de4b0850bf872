package models

// Risk levels returned by the reasoning service.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

type RiskItem struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Level          string `json:"level"`
	Clause         string `json:"clause,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type KeyClause struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Type       string `json:"type"` // favorable | unfavorable | neutral
	Importance string `json:"importance"`
	PageHint   string `json:"pageHint,omitempty"`
}

type PartyInfo struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Obligations []string `json:"obligations"`
	Rights      []string `json:"rights"`
}

type FinancialTerms struct {
	Amount       string `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	Penalties    string `json:"penalties,omitempty"`
}

// ContractAnalysis is the structured reply of the reasoning service. The
// model's output is untrusted text: after decoding, Normalize must be called
// so that scores are within range and list fields are never nil.
type ContractAnalysis struct {
	ContractType          string          `json:"contractType"`
	ContractTitle         string          `json:"contractTitle"`
	OverallRisk           string          `json:"overallRisk"`
	RiskScore             int             `json:"riskScore"`
	Summary               string          `json:"summary"`
	EffectiveDate         string          `json:"effectiveDate,omitempty"`
	ExpirationDate        string          `json:"expirationDate,omitempty"`
	Jurisdiction          string          `json:"jurisdiction,omitempty"`
	GoverningLaw          string          `json:"governingLaw,omitempty"`
	Parties               []PartyInfo     `json:"parties"`
	KeyClauses            []KeyClause     `json:"keyClauses"`
	Risks                 []RiskItem      `json:"risks"`
	Recommendations       []string        `json:"recommendations"`
	RedFlags              []string        `json:"redFlags"`
	Strengths             []string        `json:"strengths"`
	MissingClauses        []string        `json:"missingClauses"`
	UnusualProvisions     []string        `json:"unusualProvisions"`
	FinancialTerms        *FinancialTerms `json:"financialTerms,omitempty"`
	TerminationClauses    []string        `json:"terminationClauses"`
	ConfidentialityClauses []string       `json:"confidentialityClauses"`
	DisputeResolution     string          `json:"disputeResolution,omitempty"`
	CompletenessScore     int             `json:"completenessScore"`
	FairnessScore         int             `json:"fairnessScore"`
	AnalysisTimestamp     string          `json:"analysisTimestamp"`
}

// Normalize coerces a decoded analysis into its invariants: every score is
// clamped to [0,100] and every list field defaults to empty instead of nil.
func (a *ContractAnalysis) Normalize() {
	a.RiskScore = clampScore(a.RiskScore)
	a.CompletenessScore = clampScore(a.CompletenessScore)
	a.FairnessScore = clampScore(a.FairnessScore)

	if a.Parties == nil {
		a.Parties = []PartyInfo{}
	}
	for i := range a.Parties {
		if a.Parties[i].Obligations == nil {
			a.Parties[i].Obligations = []string{}
		}
		if a.Parties[i].Rights == nil {
			a.Parties[i].Rights = []string{}
		}
	}
	if a.KeyClauses == nil {
		a.KeyClauses = []KeyClause{}
	}
	if a.Risks == nil {
		a.Risks = []RiskItem{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	if a.RedFlags == nil {
		a.RedFlags = []string{}
	}
	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	if a.MissingClauses == nil {
		a.MissingClauses = []string{}
	}
	if a.UnusualProvisions == nil {
		a.UnusualProvisions = []string{}
	}
	if a.TerminationClauses == nil {
		a.TerminationClauses = []string{}
	}
	if a.ConfidentialityClauses == nil {
		a.ConfidentialityClauses = []string{}
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
