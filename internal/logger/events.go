package logger

import (
	"github.com/charmbracelet/log"

	"pantrypick/internal/eventbus"
)

// AttachEvents logs search and pantry events from the bus. It returns a
// function that removes the subscriptions.
func AttachEvents(bus eventbus.EventBus, l *log.Logger) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SearchStartedEvent)
			l.Debug("search started", "gen", ev.Generation, "query", ev.Query)
		}),
		bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SearchCompletedEvent)
			l.Info("search completed", "gen", ev.Generation, "query", ev.Query, "results", ev.Count)
		}),
		bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SearchFailedEvent)
			l.Error("search failed", "gen", ev.Generation, "query", ev.Query, "err", ev.Err)
		}),
		bus.Subscribe(eventbus.EventSearchCleared, func(eventbus.DomainEvent) {
			l.Debug("search cleared")
		}),
		bus.Subscribe(eventbus.EventResponseDiscarded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ResponseDiscardedEvent)
			l.Debug("stale response discarded", "gen", ev.Generation, "current", ev.Current, "query", ev.Query)
		}),
		bus.Subscribe(eventbus.EventIngredientDropped, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.IngredientDroppedEvent)
			l.Info("ingredient added", "id", ev.ID, "name", ev.Name)
		}),
		bus.Subscribe(eventbus.EventIngredientReturned, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.IngredientReturnedEvent)
			l.Info("ingredient returned", "id", ev.ID, "name", ev.Name)
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
