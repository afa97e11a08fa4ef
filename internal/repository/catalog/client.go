package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/abhiguop/netflix/internal/log"
	"github.com/machinebox/graphql"
)

// Client is the generic catalog client for making queries against the streaming
// catalog's graphql API
type Client struct {
	client    *graphql.Client
	authToken string
}

func NewClient(endpoint, authToken string) (*Client, error) {
	if endpoint == "" {
		log.Error("Catalog client endpoint is empty.")
		return nil, fmt.Errorf("catalog client endpoint is empty")
	}

	return &Client{
		client:    graphql.NewClient(endpoint),
		authToken: authToken,
	}, nil
}

func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error {
	req := graphql.NewRequest(query)

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	for key, value := range variables {
		req.Var(key, value)
	}

	if err := c.client.Run(ctx, req, result); err != nil {
		return classifyError(err)
	}
	return nil
}

type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// classifyError wraps connectivity failures in a NetworkError so callers can
// distinguish "the catalog is unreachable" from a bad query or bad data.
func classifyError(err error) error {
	var netErr *url.Error
	if errors.As(err, &netErr) && (netErr.Timeout() || netErr.Temporary() ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "no such host") ||
		strings.Contains(err.Error(), "i/o timeout")) {
		return NetworkError{Err: err}
	}
	return err
}
