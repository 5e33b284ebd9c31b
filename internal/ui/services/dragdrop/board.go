package dragdrop

import (
	"pantrypick/internal/domain"
	"pantrypick/internal/eventbus"
)

// Board is the drag-and-drop state for the suggestion list and the pantry
// drop zone. It only tracks identifiers and the pantry contents; the
// renderer decides how a dragged, hovered or moved row looks.
type Board struct {
	bus eventbus.EventBus

	dragging string       // id marked as being dragged
	transfer *domain.Item // payload of the current drag session
	hovering bool         // drop zone marked as acceptable
	pantry   []domain.Item
}

// NewBoard creates an empty board
func NewBoard(bus eventbus.EventBus) *Board {
	return &Board{bus: bus}
}

// Visible pairs suggestions with their ids and skips rows that were moved
// into the pantry. The input slice is not modified.
func (b *Board) Visible(suggestions []domain.Suggestion) []domain.Item {
	ids := IDs(suggestions)
	items := make([]domain.Item, 0, len(suggestions))
	for i, s := range suggestions {
		item := domain.Item{ID: ids[i], Suggestion: s}
		if b.Hidden(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// DragStart begins a drag session for item
func (b *Board) DragStart(item domain.Item) bool {
	if item.ID == "" || b.Hidden(item) {
		return false
	}
	payload := item
	b.transfer = &payload
	b.dragging = item.ID
	b.hovering = false
	return true
}

// DragOver marks the drop zone as an acceptable target. It returns false when
// no drag is in progress, i.e. a drop would not be accepted.
func (b *Board) DragOver() bool {
	if b.transfer == nil {
		return false
	}
	b.hovering = true
	return true
}

// DragLeave clears the acceptable mark on the drop zone
func (b *Board) DragLeave() {
	b.hovering = false
}

// Drop moves the dragged item into the pantry if the drop zone accepted it.
// The payload and both marks are cleared either way.
func (b *Board) Drop() (domain.Item, bool) {
	payload, accepted := b.transfer, b.hovering
	b.reset()

	if payload == nil || !accepted || b.Hidden(*payload) {
		return domain.Item{}, false
	}

	b.pantry = append(b.pantry, *payload)
	if b.bus != nil {
		b.bus.Publish(eventbus.IngredientDroppedEvent{ID: payload.ID, Name: payload.Suggestion.Name})
	}
	return *payload, true
}

// DragEnd cancels the drag session without moving anything
func (b *Board) DragEnd() {
	b.reset()
}

// Remove takes an item back out of the pantry
func (b *Board) Remove(id string) (domain.Item, bool) {
	for i, item := range b.pantry {
		if item.ID != id {
			continue
		}
		b.pantry = append(b.pantry[:i:i], b.pantry[i+1:]...)
		if b.bus != nil {
			b.bus.Publish(eventbus.IngredientReturnedEvent{ID: item.ID, Name: item.Suggestion.Name})
		}
		return item, true
	}
	return domain.Item{}, false
}

// Dragging returns the id being dragged, or "" outside a drag session
func (b *Board) Dragging() string {
	return b.dragging
}

// Hovering reports whether the drop zone is marked as acceptable
func (b *Board) Hovering() bool {
	return b.hovering
}

// Hidden reports whether item has been moved into the pantry. Ids are only
// unique within one result list, so the name has to match too: "apple" taken
// as source-apple-2 does not hide a later "apple 2".
func (b *Board) Hidden(item domain.Item) bool {
	for _, p := range b.pantry {
		if p.ID == item.ID && p.Suggestion.Name == item.Suggestion.Name {
			return true
		}
	}
	return false
}

// Pantry returns a copy of the pantry contents in drop order
func (b *Board) Pantry() []domain.Item {
	return append([]domain.Item(nil), b.pantry...)
}

func (b *Board) reset() {
	b.transfer = nil
	b.dragging = ""
	b.hovering = false
}
