package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleReply = `{
  "contractType": "Kira Sözleşmesi",
  "contractTitle": "Konut Kira Sözleşmesi",
  "overallRisk": "medium",
  "riskScore": 55,
  "summary": "Standart bir kira sözleşmesi.",
  "parties": [{"name": "Ev Sahibi", "role": "Kiralayan", "obligations": ["Teslim"], "rights": ["Kira bedeli"]}],
  "keyClauses": [{"title": "Depozito", "content": "3 aylık depozito", "type": "unfavorable", "importance": "high"}],
  "risks": [{"title": "Yüksek depozito", "description": "Piyasanın üzerinde", "level": "medium"}],
  "recommendations": ["Depozitoyu pazarlık edin"],
  "redFlags": [],
  "strengths": ["Açık fesih koşulları"],
  "missingClauses": [],
  "unusualProvisions": [],
  "terminationClauses": ["30 gün önceden bildirim"],
  "confidentialityClauses": [],
  "completenessScore": 80,
  "fairnessScore": 45,
  "analysisTimestamp": "2026-03-01T10:00:00Z"
}`

func TestParseAnalysisDirect(t *testing.T) {
	a, err := ParseAnalysis(sampleReply)
	require.NoError(t, err)
	require.Equal(t, "Kira Sözleşmesi", a.ContractType)
	require.Equal(t, 55, a.RiskScore)
	require.Len(t, a.Parties, 1)
	require.Equal(t, 45, a.FairnessScore)
}

func TestParseAnalysisCodeFenced(t *testing.T) {
	for _, fence := range []string{"```json", "```JSON", "```"} {
		wrapped := fence + "\n" + sampleReply + "\n```"
		a, err := ParseAnalysis(wrapped)
		require.NoError(t, err, "fence %q", fence)
		require.Equal(t, "Kira Sözleşmesi", a.ContractType)
	}
}

func TestParseAnalysisProseWrapped(t *testing.T) {
	wrapped := "Here is the analysis you asked for:\n\n" + sampleReply + "\n\nLet me know if you need more detail."
	a, err := ParseAnalysis(wrapped)
	require.NoError(t, err)
	require.Equal(t, "Konut Kira Sözleşmesi", a.ContractTitle)
}

func TestParseAnalysisRoundTrip(t *testing.T) {
	a, err := ParseAnalysis(sampleReply)
	require.NoError(t, err)

	encoded, err := json.Marshal(a)
	require.NoError(t, err)

	again, err := ParseAnalysis(string(encoded))
	require.NoError(t, err)
	require.Equal(t, a, again)
}

func TestParseAnalysisHardFailure(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not analyze this document.",
		"{ \"contractType\": ",   // never closes
		"[1, 2, 3]",              // no object
		"null",                   // valid JSON, decodes to nothing
		"```json\nnull\n```",
		`"just a string"`,
		"42",
	} {
		_, err := ParseAnalysis(raw)
		require.ErrorIs(t, err, ErrNoAnalysisJSON, "raw %q", raw)
	}
}

func TestParseAnalysisNormalizes(t *testing.T) {
	raw := `{"contractType": "NDA", "riskScore": 250, "completenessScore": -5, "fairnessScore": 101}`
	a, err := ParseAnalysis(raw)
	require.NoError(t, err)

	require.Equal(t, 100, a.RiskScore)
	require.Equal(t, 0, a.CompletenessScore)
	require.Equal(t, 100, a.FairnessScore)

	// Absent list fields default to empty, never nil.
	require.NotNil(t, a.Parties)
	require.Empty(t, a.Parties)
	require.NotNil(t, a.RedFlags)
	require.NotNil(t, a.TerminationClauses)
	require.NotNil(t, a.ConfidentialityClauses)
}

func TestFirstJSONObjectIgnoresBracesInStrings(t *testing.T) {
	raw := `prose {"summary": "uses { and } inside", "riskScore": 10} trailing {"x": 1}`
	block, ok := firstJSONObject(raw)
	require.True(t, ok)
	require.Equal(t, `{"summary": "uses { and } inside", "riskScore": 10}`, block)
}
