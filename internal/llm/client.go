package llm

import (
	"context"
)

// Client is an interface for generating text from a judge model backend.
// This allows mocking in tests without making real API calls.
type Client interface {
	GenerateText(ctx context.Context, request Request) (*Response, error)
}
