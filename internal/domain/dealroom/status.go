package dealroom

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid deal room transition")

var transitions = map[string][]string{
	StatusDraft:       {StatusProposed},
	StatusProposed:    {StatusUnderReview, StatusDeclined},
	StatusUnderReview: {StatusProposed, StatusAccepted, StatusDeclined},
	StatusAccepted:    {},
	StatusDeclined:    {},
}

func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

func Terminal(s string) bool {
	return s == StatusAccepted || s == StatusDeclined
}

// CanTransition reports whether a room may move from one status to another.
// under_review back to proposed models a counter-offer.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change to the room.
func (r *Room) Transition(to string) error {
	if r == nil {
		return ErrInvalidTransition
	}
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	return nil
}

// Negotiable reports whether terms may still change.
func (r *Room) Negotiable() bool {
	return r != nil && !Terminal(r.Status)
}
