package remote

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// defaultTimeout bounds a single judge call. Timed-out calls are not
// retried; the caller degrades them to a negative verdict.
const defaultTimeout = 30 * time.Second

// Client calls a text-generation judge endpoint over plain JSON/HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewClient(url string, logger *zerolog.Logger) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("judge model URL is required")
	}

	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}, nil
}
