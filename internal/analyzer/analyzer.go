// Package analyzer sends contract text to the reasoning service and decodes
// the structured legal analysis it returns.
package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tozoll/legal-ai-analyzer/internal/models"
)

// ContractAnalyzer is what the request pipeline depends on; satisfied by
// *Analyzer and stubbed in handler tests.
type ContractAnalyzer interface {
	Analyze(ctx context.Context, contractText, partyName string) (*models.ContractAnalysis, error)
}

type Analyzer struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// New builds an Analyzer. The timeout bounds the full upstream round trip;
// extra options (base URL overrides in tests) come last so they win.
func New(apiKey, model string, maxTokens int64, timeout time.Duration, opts ...option.RequestOption) *Analyzer {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)

	return &Analyzer{
		client:    anthropic.NewClient(options...),
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Analyze runs one analysis round trip: cap the contract text, send the
// prompt, decode the reply. Any upstream or parse failure is a hard error;
// there are no partial results.
func (a *Analyzer) Analyze(ctx context.Context, contractText, partyName string) (*models.ContractAnalysis, error) {
	prompt := BuildPrompt(partyName) + TruncateContract(contractText)

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reasoning service request: %w", err)
	}

	var raw string
	for _, block := range message.Content {
		if block.Type == "text" {
			raw += block.Text
		}
	}
	if raw == "" {
		return nil, fmt.Errorf("unexpected reply from reasoning service: no text content")
	}

	return ParseAnalysis(raw)
}
