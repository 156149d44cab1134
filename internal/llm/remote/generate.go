package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/povarna/fac-evaluator/internal/llm"
)

// generateRequest is the judge endpoint payload. Judging is
// deterministic: sampling stays off and top_p stays 1.0.
type generateRequest struct {
	Prompt       string  `json:"prompt"`
	MaxNewTokens int     `json:"max_new_tokens"`
	DoSample     bool    `json:"do_sample"`
	TopP         float64 `json:"top_p"`
}

// generatedTextKeys are the response fields that may carry the generated
// text, tried in priority order. The endpoint schema is not guaranteed.
var generatedTextKeys = []string{"generated_text", "text", "response", "output"}

func (c *Client) GenerateText(ctx context.Context, request llm.Request) (*llm.Response, error) {
	payload := generateRequest{
		Prompt:       request.Prompt,
		MaxNewTokens: request.MaxNewTokens,
		DoSample:     false,
		TopP:         1.0,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize judge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("url", c.url).
			Msg("judge model call failed")
		return nil, fmt.Errorf("unable to call judge model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read judge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", c.url).
			RawJSON("payload", body).
			Str("response", string(respBody)).
			Msg("judge model API error")
		return nil, fmt.Errorf("API call failed: %d - %s", resp.StatusCode, string(respBody))
	}

	text, err := extractGeneratedText(respBody)
	if err != nil {
		return nil, err
	}

	return &llm.Response{Content: text}, nil
}

// extractGeneratedText resolves the untagged union of response shapes:
// the first known key holding a string wins; a body with none of them is
// stringified wholesale so the caller always has some text to parse.
func extractGeneratedText(raw []byte) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("unable to decode judge response: %w", err)
	}

	for _, key := range generatedTextKeys {
		if value, ok := payload[key].(string); ok {
			return value, nil
		}
	}

	return string(raw), nil
}
