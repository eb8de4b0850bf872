package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tozoll/legal-ai-analyzer/internal/models"
)

// ErrNoAnalysisJSON means the reply contained no decodable JSON object.
// The pipeline never falls back to a partially-filled analysis.
var ErrNoAnalysisJSON = errors.New("no analysis JSON found in reply")

// ParseAnalysis decodes the reasoning service's textual reply. Code fences
// are stripped first; if a direct decode fails, the first balanced {...}
// block is extracted and decoded instead. The result is normalized before
// being returned.
func ParseAnalysis(raw string) (*models.ContractAnalysis, error) {
	var analysis models.ContractAnalysis

	// The direct decode must see an object: "null" or a bare scalar is valid
	// JSON that unmarshals into a zero struct, which would pass as an empty
	// analysis.
	jsonText := stripCodeFences(strings.TrimSpace(raw))
	if strings.HasPrefix(jsonText, "{") && json.Unmarshal([]byte(jsonText), &analysis) == nil {
		analysis.Normalize()
		return &analysis, nil
	}

	block, ok := firstJSONObject(raw)
	if !ok {
		return nil, ErrNoAnalysisJSON
	}
	// A failed direct decode can leave fields behind.
	analysis = models.ContractAnalysis{}
	if err := json.Unmarshal([]byte(block), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAnalysisJSON, err)
	}

	analysis.Normalize()
	return &analysis, nil
}

func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```JSON")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSpace(text)
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}
	return text
}

// firstJSONObject scans for the first balanced top-level {...} block,
// tracking string literals so braces inside values don't break the count.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
