package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/utils"
)

const (
	apiKeyHeader        = "x-goog-api-key"
	generateContentPath = "/models/{model}:generateContent"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

type geminiAdapter struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewGeminiAdapter builds a [GenerationGateway] backed by the Gemini
// generateContent REST endpoint. The API key is captured once here and sent
// with every request.
func NewGeminiAdapter(cfg config.Gemini, log *logger.Logger) (GenerationGateway, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader(apiKeyHeader, apiKey).
		SetHeader("Content-Type", "application/json")

	return &geminiAdapter{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

func (g *geminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetBody(body).
		Post(generateContentPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Warn().Int("status", resp.StatusCode()).Err(err).Str("func", "geminiAdapter.Generate").Msg("upstream rejected request")
		return "", err
	}

	var reply generateContentResponse
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingReply, err)
	}

	return reply.text()
}

// text concatenates the parts of the first candidate.
func (r generateContentResponse) text() (string, error) {
	if len(r.Candidates) == 0 {
		if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: %s", ErrPromptBlocked, r.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
