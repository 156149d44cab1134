package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/fac-evaluator/internal/llm"
)

// GenerateText invokes the GPT judge model. Temperature is fixed at zero
// so verdicts stay deterministic; the client retries internally.
func (c *Client) GenerateText(ctx context.Context, request llm.Request) (*llm.Response, error) {
	message := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		MaxCompletionTokens: openai.Int(int64(request.MaxNewTokens)),
		Temperature:         openai.Float(0.0),
		Model:               openai.ChatModel(c.ModelID),
	}

	output, err := c.Client.Chat.Completions.New(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &llm.Response{
		Content: output.Choices[0].Message.Content,
	}, nil
}
