// ABOUTME: Query framing analyzer classifies a user query as neutral or biased
// ABOUTME: Calls a chat-completions capability and degrades to a neutral default on any failure

package trust

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sourcetrust-api/core/domain"
	coreerrors "sourcetrust-api/core/errors"
)

const (
	framingPromptFormat = "Classify the framing of the following user query. " +
		"Respond with exactly one word, either \"Neutral\" or \"Biased\".\n\nQuery: %s"

	framingDetailsSkipped = "Analysis skipped: API Key not configured."
	framingDetailsFailed  = "Analysis could not be performed."
)

// chatCompletionRequest is the classification capability's request shape.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeQueryFraming classifies the query's framing via the configured
// text-classification capability. Failures are non-fatal: the analyzer never
// raises the overall risk when the check cannot run.
func (s *Service) AnalyzeQueryFraming(ctx context.Context, userQuery string) domain.FramingResult {
	if s.cfg.Classifier.APIKey == "" {
		return domain.FramingResult{
			Score:    100,
			IsBiased: false,
			Details:  framingDetailsSkipped,
			Outcome:  domain.OutcomeSkipped,
		}
	}

	label, err := s.classifyQuery(ctx, userQuery)
	if err != nil {
		s.deps.Logger.Warn("query framing classification failed", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.FramingResult{
			Score:    100,
			IsBiased: false,
			Details:  framingDetailsFailed,
			Outcome:  domain.OutcomeFailed,
		}
	}

	biased := isBiasedLabel(label)
	score := 100
	details := "Query framing appears neutral."
	if biased {
		score = 50
		details = "Query framing appears biased."
	}

	return domain.FramingResult{
		Score:    score,
		IsBiased: biased,
		Details:  details,
		Outcome:  domain.OutcomeComputed,
	}
}

// isBiasedLabel applies the classification contract: the completion is
// lower-cased, trimmed, and matched for the substring "biased". The matching
// rule is deliberately isolated here so it can be tested independently of the
// network call.
func isBiasedLabel(completion string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(completion)), "biased")
}

// classifyQuery sends one classification request and returns the raw
// completion text. A single attempt is made; any failure is final.
func (s *Service) classifyQuery(ctx context.Context, userQuery string) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.Classifier.Model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(framingPromptFormat, userQuery)},
		},
		MaxTokens:   5,
		Temperature: 0.1,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout())
	defer cancel()

	headers := map[string]string{
		"Authorization": "Bearer " + s.cfg.Classifier.APIKey,
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.cfg.Classifier.Endpoint, headers, bytes.NewReader(payload))
	if err != nil {
		return "", coreerrors.WrapError(err, "classification request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "classifier",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read classification response")
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", coreerrors.WrapError(err, "failed to parse classification response")
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("classifier returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
