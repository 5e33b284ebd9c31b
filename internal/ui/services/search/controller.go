package search

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"pantrypick/internal/config"
	"pantrypick/internal/debounce"
	"pantrypick/internal/domain"
	"pantrypick/internal/eventbus"
)

// ErrMissingAPIKey is returned when the controller is built without a key
var ErrMissingAPIKey = errors.New("search: missing API key")

// Searcher is the outbound food API
type Searcher interface {
	Autocomplete(ctx context.Context, query string, number int) ([]domain.Suggestion, error)
}

// SearcherFunc adapts a function to Searcher
type SearcherFunc func(ctx context.Context, query string, number int) ([]domain.Suggestion, error)

func (f SearcherFunc) Autocomplete(ctx context.Context, query string, number int) ([]domain.Suggestion, error) {
	return f(ctx, query, number)
}

// Controller owns the query, the debounced query and the request lifecycle.
// Everything except the debounce timer runs on the UI goroutine.
type Controller struct {
	client  Searcher
	limit   int
	timeout time.Duration
	bus     eventbus.EventBus

	debouncer *debounce.Debouncer[string]

	query      string
	generation uint64 // id of the only request whose result may be applied
	cancel     context.CancelFunc
	state      domain.Lifecycle
}

// NewController builds a controller from validated configuration. notify
// receives DebouncedMsg from the timer goroutine and must not block.
func NewController(cfg *config.Config, client Searcher, clock clockwork.Clock, notify func(tea.Msg), bus eventbus.EventBus) (*Controller, error) {
	if cfg == nil || strings.TrimSpace(cfg.API.Key) == "" {
		return nil, ErrMissingAPIKey
	}
	if client == nil {
		return nil, errors.New("search: nil client")
	}

	limit := cfg.API.Limit
	if limit <= 0 {
		limit = config.DefaultLimit
	}

	c := &Controller{
		client:  client,
		limit:   limit,
		timeout: cfg.API.Timeout.Std(),
		bus:     bus,
		state:   domain.Lifecycle{Phase: domain.PhaseIdle},
	}
	c.debouncer = debounce.New(clock, cfg.Search.Debounce.Std(), func(q string) {
		notify(DebouncedMsg{Query: q})
	})
	return c, nil
}

// State returns the current lifecycle state
func (c *Controller) State() domain.Lifecycle {
	return c.state
}

// Query returns the live, undebounced query
func (c *Controller) Query() string {
	return c.query
}

// SetQuery is called synchronously on every edit of the input. Clearing the
// input drops to Idle immediately and orphans any in-flight request.
func (c *Controller) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q

	if q == "" {
		c.debouncer.Reset("")
		c.invalidate()
		c.state = domain.Lifecycle{Phase: domain.PhaseIdle}
		c.publish(eventbus.SearchClearedEvent{})
		return
	}

	c.debouncer.Push(q)
}

// Debounced handles a DebouncedMsg. It issues exactly one request for q and
// returns the command that performs it, or nil when q is no longer live.
func (c *Controller) Debounced(q string) tea.Cmd {
	if q == "" || q != c.query {
		return nil
	}

	c.invalidate()
	gen := c.generation

	var ctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), c.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	c.cancel = cancel

	c.state = domain.Lifecycle{Phase: domain.PhaseLoading, Query: q}
	c.publish(eventbus.SearchStartedEvent{Generation: gen, Query: q})

	client, limit := c.client, c.limit
	return func() tea.Msg {
		defer cancel()
		results, err := client.Autocomplete(ctx, q, limit)
		return ResultMsg{Generation: gen, Query: q, Suggestions: results, Err: err}
	}
}

// Apply handles a ResultMsg. Only the most recently issued request is
// applied; it reports whether the state changed.
func (c *Controller) Apply(msg ResultMsg) bool {
	if msg.Generation != c.generation || c.state.Phase != domain.PhaseLoading {
		c.publish(eventbus.ResponseDiscardedEvent{
			Generation: msg.Generation,
			Current:    c.generation,
			Query:      msg.Query,
		})
		return false
	}
	c.cancel = nil

	if msg.Err != nil {
		c.state = domain.Lifecycle{Phase: domain.PhaseError, Query: msg.Query, Message: msg.Err.Error()}
		c.publish(eventbus.SearchFailedEvent{Generation: msg.Generation, Query: msg.Query, Err: msg.Err})
		return true
	}

	results := msg.Suggestions
	if results == nil {
		results = []domain.Suggestion{}
	}
	c.state = domain.Lifecycle{Phase: domain.PhaseReady, Query: msg.Query, Results: results}
	c.publish(eventbus.SearchCompletedEvent{Generation: msg.Generation, Query: msg.Query, Count: len(results)})
	return true
}

// Close stops the debounce timer and cancels any in-flight request
func (c *Controller) Close() {
	c.debouncer.Stop()
	c.invalidate()
}

// invalidate bumps the generation so no earlier response can be applied
func (c *Controller) invalidate() {
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
