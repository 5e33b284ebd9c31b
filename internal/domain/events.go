package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted      EventType = "SearchStarted"
	EventSearchCompleted    EventType = "SearchCompleted"
	EventSearchFailed       EventType = "SearchFailed"
	EventSearchCleared      EventType = "SearchCleared"
	EventResponseDiscarded  EventType = "ResponseDiscarded"
	EventIngredientDropped  EventType = "IngredientDropped"
	EventIngredientReturned EventType = "IngredientReturned"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a request is issued for a debounced query
type SearchStartedEvent struct {
	Generation uint64
	Query      string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when the authoritative request succeeds
type SearchCompletedEvent struct {
	Generation uint64
	Query      string
	Count      int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the authoritative request fails
type SearchFailedEvent struct {
	Generation uint64
	Query      string
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchClearedEvent is emitted when the input is emptied
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ResponseDiscardedEvent is emitted when a stale response is dropped
type ResponseDiscardedEvent struct {
	Generation uint64 // generation of the dropped response
	Current    uint64
	Query      string
}

func (e ResponseDiscardedEvent) Type() EventType { return EventResponseDiscarded }

// IngredientDroppedEvent is emitted when a suggestion lands in the pantry
type IngredientDroppedEvent struct {
	ID   string
	Name string
}

func (e IngredientDroppedEvent) Type() EventType { return EventIngredientDropped }

// IngredientReturnedEvent is emitted when a pantry item is taken back out
type IngredientReturnedEvent struct {
	ID   string
	Name string
}

func (e IngredientReturnedEvent) Type() EventType { return EventIngredientReturned }
