// Package client is a typed HTTP client for the product lookup API. It
// classifies every failure into a human-readable message so callers never
// surface raw transport errors.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/murkotick/product-lookup-service/internal/app/product/dto"
)

// Kind classifies a failed lookup.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindServer
	KindNetwork
	KindUnknown
)

// Error is the classified failure returned by the client. Message is always
// human-readable; Err retains the underlying cause when one exists.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

const (
	defaultTimeout  = 10 * time.Second
	fallbackMessage = "An unexpected error occurred"
)

// Client calls the lookup API over HTTP.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the given base URL with the fixed default
// transport timeout.
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: defaultTimeout},
	}
}

// GetProductByID fetches a product view. Every failure path returns a
// *Error with a message suitable for direct display:
//
//	404            -> KindNotFound, "Product with ID <id> not found"
//	5xx            -> KindServer, independent of the response body
//	no response    -> KindNetwork
//	anything else  -> KindUnknown, underlying message or a generic fallback
func (c *Client) GetProductByID(ctx context.Context, id int64) (*dto.ProductView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.base, id), nil)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "Network error - please check your connection", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var v dto.ProductView
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return nil, &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
		}
		return &v, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Message: fmt.Sprintf("Product with ID %d not found", id)}

	case resp.StatusCode >= 500:
		return nil, &Error{Kind: KindServer, Message: "Server error - please try again later"}

	default:
		return nil, &Error{Kind: KindUnknown, Message: fallbackMessage}
	}
}
