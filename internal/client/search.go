package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/murkotick/product-lookup-service/internal/app/product/dto"
)

// State is the lifecycle of a product search as observed by a presenter:
// idle -> loading -> success | error.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Fetcher is the lookup dependency of a search session.
type Fetcher interface {
	GetProductByID(ctx context.Context, id int64) (*dto.ProductView, error)
}

// Search drives the fetch state machine for one input form. Empty,
// non-numeric, and non-positive input never invokes the fetcher: the session
// stays in its current state.
//
// A Search is not safe for concurrent use. Overlapping submissions are not
// cancelled or de-duplicated; callers that fire them from multiple goroutines
// get last-writer-wins state.
type Search struct {
	fetcher Fetcher

	state   State
	result  *dto.ProductView
	message string
}

func NewSearch(f Fetcher) *Search {
	return &Search{fetcher: f, state: StateIdle}
}

// Submit validates the raw input and, when it is a positive integer, runs the
// fetch. The returned state is the session's state after the submission.
func (s *Search) Submit(ctx context.Context, input string) State {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		return s.state
	}

	s.state = StateLoading
	s.result = nil
	s.message = ""

	view, err := s.fetcher.GetProductByID(ctx, id)
	if err != nil {
		s.state = StateError
		s.message = err.Error()
		return s.state
	}

	s.state = StateSuccess
	s.result = view
	return s.state
}

// State reports the session's current state.
func (s *Search) State() State { return s.state }

// Result is the fetched view after a successful submission, nil otherwise.
func (s *Search) Result() *dto.ProductView { return s.result }

// Message is the user-facing error message after a failed submission.
func (s *Search) Message() string { return s.message }
