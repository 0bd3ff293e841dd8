package app

import (
	"encoding/json"
	"fmt"

	"github.com/davidmrt/promptforge/internal/domain"
)

func optimizationResultSchema() *domain.Schema {
	return &domain.Schema{
		Type: domain.TypeObject,
		Properties: map[string]*domain.Schema{
			"optimized_prompt": {
				Type:        domain.TypeString,
				Description: "The complete, enhanced, and optimized prompt, formatted in Markdown for readability (using headings, lists, bold text, etc.).",
			},
			"improvements": {
				Type:        domain.TypeArray,
				Items:       &domain.Schema{Type: domain.TypeString},
				Description: "A list of 3-5 key improvements made. Each item MUST be a single, ultra-short sentence (maximum 10-12 words) in plain text without any markdown formatting, asterisks, or special characters.",
			},
			"tips": {
				Type:        domain.TypeArray,
				Items:       &domain.Schema{Type: domain.TypeString},
				Description: "A list of 3-5 practical tips. Each item MUST be a brief, actionable sentence (maximum 12-15 words) in plain text without any markdown formatting, asterisks, or special characters.",
			},
			"techniques_applied": {
				Type:        domain.TypeArray,
				Items:       &domain.Schema{Type: domain.TypeString},
				Description: "A list of specific prompt engineering techniques used (e.g., 'Role Prompting', 'Chain-of-Thought').",
			},
		},
		Required: []string{"optimized_prompt", "improvements", "tips", "techniques_applied"},
	}
}

type optimizationPayload struct {
	OptimizedPrompt   *string   `json:"optimized_prompt"`
	Improvements      *[]string `json:"improvements"`
	Tips              *[]string `json:"tips"`
	TechniquesApplied *[]string `json:"techniques_applied"`
}

// parseOptimizationResult checks the generated payload against the
// four-field contract. There is no partial success: any missing or
// mistyped field rejects the whole payload.
func parseOptimizationResult(content []byte) (*domain.OptimizationResult, error) {
	var payload optimizationPayload
	err := json.Unmarshal(content, &payload)

	if err != nil {
		return nil, err
	}

	switch {
	case payload.OptimizedPrompt == nil:
		return nil, fieldErr("optimized_prompt")
	case payload.Improvements == nil:
		return nil, fieldErr("improvements")
	case payload.Tips == nil:
		return nil, fieldErr("tips")
	case payload.TechniquesApplied == nil:
		return nil, fieldErr("techniques_applied")
	}

	return &domain.OptimizationResult{
		OptimizedPrompt:   *payload.OptimizedPrompt,
		Improvements:      *payload.Improvements,
		Tips:              *payload.Tips,
		TechniquesApplied: *payload.TechniquesApplied,
	}, nil
}

func fieldErr(field string) error {
	return fmt.Errorf("missing or malformed field %s", field)
}
