package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// GeminiRepo calls the generateContent endpoint of the Gemini REST API.
// Calls are single-shot: a failed or malformed response is returned to
// the caller as-is, with no retry.
type GeminiRepo struct {
	Client  *resty.Client
	APIKey  string
	Model   string
	BaseUrl string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float32        `json:"temperature"`
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   *domain.Schema `json:"responseSchema,omitempty"`
}

type generateContentReq struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type generateContentResp struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (r GeminiRepo) Generate(ctx context.Context, prompt string, config domain.GenerationConfig) (string, error) {
	body := generateContentReq{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      config.Temperature,
			ResponseMIMEType: config.ResponseMIMEType,
			ResponseSchema:   config.ResponseSchema,
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", r.BaseUrl, r.Model)

	resp, err := r.Client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", r.APIKey).
		SetBody(body).
		Post(url)

	if err != nil {
		return "", err
	} else if resp.StatusCode() != 200 {
		return "", fmt.Errorf("unexpected generation response status code %d", resp.StatusCode())
	}

	var record generateContentResp
	err = json.Unmarshal(resp.Body(), &record)

	if err != nil {
		return "", err
	}

	if len(record.Candidates) == 0 || len(record.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation response contains no candidates")
	}

	return record.Candidates[0].Content.Parts[0].Text, nil
}
