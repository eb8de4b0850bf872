package analyzer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxContractChars caps the contract text sent upstream (~40k tokens).
	MaxContractChars = 150000

	// TruncationMarker is appended whenever the contract text was cut.
	TruncationMarker = "\n\n[Document truncated for analysis]"
)

// TruncateContract enforces the upstream character budget, appending the
// truncation marker when the text was cut. The cut backs up to a rune
// boundary so a multi-byte character is never split.
func TruncateContract(text string) string {
	if len(text) <= MaxContractChars {
		return text
	}
	cut := MaxContractChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + TruncationMarker
}

// BuildPrompt constructs the instruction block sent ahead of the contract
// text. When a party name is supplied, every favorable/unfavorable judgment,
// the fairness score and the summary are reframed from that party's
// standpoint.
func BuildPrompt(partyName string) string {
	var partyContext string
	if strings.TrimSpace(partyName) != "" {
		partyContext = fmt.Sprintf(`
IMPORTANT — USER'S PERSPECTIVE:
The user is representing %[1]q in this contract. You MUST analyze every clause strictly from their point of view:
- "favorable" means the clause benefits %[1]q specifically
- "unfavorable" means the clause is disadvantageous or risky for %[1]q specifically
- All risks, recommendations, and red flags should be framed from %[1]q's perspective
- The fairnessScore should reflect how fair the contract is for %[1]q (50 = neutral, >50 = favorable to them, <50 = unfavorable to them)
- In the summary, explicitly state how this contract positions %[1]q
`, partyName)
	} else {
		partyContext = `
NOTE: No specific party perspective provided. Perform a balanced, neutral analysis.
`
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)

	return fmt.Sprintf(`You are an expert legal analyst and contract lawyer with decades of experience in corporate law, contract drafting, and legal risk assessment. Your task is to perform a comprehensive, professional analysis of the provided contract document.
%s
Analyze the contract thoroughly and provide your analysis in the following JSON format. Be precise, specific, and actionable in your analysis. Do not use generic responses - cite specific clauses and provisions.

Return ONLY valid JSON with this exact structure (no markdown, no code blocks, just raw JSON):

{
  "contractType": "Type of contract (e.g., Employment Agreement, NDA, Service Agreement, etc.)",
  "contractTitle": "Official title of the contract",
  "overallRisk": "low|medium|high|critical",
  "riskScore": <number 0-100, higher means riskier for the user's party>,
  "summary": "Comprehensive 3-4 sentence executive summary. If a party perspective is given, include an explicit statement on how the contract positions that party.",
  "effectiveDate": "Contract effective date if found",
  "expirationDate": "Contract expiration/termination date if found",
  "jurisdiction": "Applicable jurisdiction",
  "governingLaw": "Governing law clause",
  "parties": [
    {
      "name": "Party name",
      "role": "Role (e.g., Employer, Employee, Client, Vendor)",
      "obligations": ["Specific obligation 1", "Specific obligation 2"],
      "rights": ["Specific right 1", "Specific right 2"]
    }
  ],
  "keyClauses": [
    {
      "title": "Clause name",
      "content": "Summary of clause content",
      "type": "favorable|unfavorable|neutral",
      "importance": "low|medium|high",
      "pageHint": "Quote first few words of the clause for location"
    }
  ],
  "risks": [
    {
      "title": "Risk name",
      "description": "Detailed description of the risk",
      "level": "low|medium|high|critical",
      "clause": "Relevant clause or section reference",
      "recommendation": "Specific actionable recommendation"
    }
  ],
  "recommendations": ["Specific recommendation 1", "Specific recommendation 2"],
  "redFlags": ["Critical issue 1", "Critical issue 2"],
  "strengths": ["Positive aspect 1", "Positive aspect 2"],
  "missingClauses": ["Missing important clause 1", "Missing important clause 2"],
  "unusualProvisions": ["Unusual or non-standard provision 1"],
  "financialTerms": {
    "amount": "Contract value if applicable",
    "currency": "Currency",
    "paymentTerms": "Payment terms and schedule",
    "penalties": "Penalty clauses"
  },
  "terminationClauses": ["Termination condition 1", "Termination condition 2"],
  "confidentialityClauses": ["Confidentiality provision 1"],
  "disputeResolution": "Method of dispute resolution",
  "completenessScore": <number 0-100>,
  "fairnessScore": <number 0-100, 50 is neutral, higher is more favorable to the user's party>,
  "analysisTimestamp": "%s"
}

Be thorough and specific. Identify at least 3-5 key clauses, 2-4 risks, and 3-5 recommendations. If something is not found in the document, use null for that field or an empty array for array fields.

CONTRACT DOCUMENT TO ANALYZE:
`, partyContext, timestamp)
}
