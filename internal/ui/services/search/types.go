package search

import "pantrypick/internal/domain"

// DebouncedMsg carries a query that has been stable for the debounce delay.
// It is produced off the UI goroutine and must be fed back through Update.
type DebouncedMsg struct {
	Query string
}

// ResultMsg is the outcome of one outbound request
type ResultMsg struct {
	Generation  uint64
	Query       string
	Suggestions []domain.Suggestion
	Err         error
}
