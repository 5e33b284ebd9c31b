package domain

import (
	"encoding/json"
	"errors"
)

// ErrNoName is returned when an API entry lacks a string name field
var ErrNoName = errors.New("suggestion has no name")

// Suggestion is one autocomplete hit returned by the food API
type Suggestion struct {
	Name  string
	Image string
	Extra map[string]any // fields the UI does not use, kept as returned
}

// UnmarshalJSON keeps name and image and stashes everything else in Extra
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	name, ok := raw["name"].(string)
	if !ok {
		return ErrNoName
	}
	s.Name = name
	s.Image, _ = raw["image"].(string)
	delete(raw, "name")
	delete(raw, "image")
	if len(raw) > 0 {
		s.Extra = raw
	} else {
		s.Extra = nil
	}
	return nil
}

// Item is a suggestion paired with its drag identifier
type Item struct {
	ID         string
	Suggestion Suggestion
}

// Phase is the request lifecycle phase shown by the UI
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Lifecycle is the current search state. Exactly one phase holds at a time;
// Message is only set in PhaseError and Results only in PhaseReady.
type Lifecycle struct {
	Phase   Phase
	Query   string
	Message string
	Results []Suggestion
}
