package dealroom

import (
	"errors"
	"testing"
)

func TestTransitionHappyPath(t *testing.T) {
	r := &Room{Status: StatusDraft}

	for _, next := range []string{StatusProposed, StatusUnderReview, StatusAccepted} {
		if err := r.Transition(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if r.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", r.Status)
	}
}

func TestTransitionCounterOffer(t *testing.T) {
	r := &Room{Status: StatusUnderReview}
	if err := r.Transition(StatusProposed); err != nil {
		t.Fatalf("counter-offer must be allowed: %v", err)
	}
}

func TestTransitionRejectsInvalid(t *testing.T) {
	cases := []struct{ from, to string }{
		{StatusDraft, StatusAccepted},
		{StatusDraft, StatusUnderReview},
		{StatusProposed, StatusAccepted},
		{StatusAccepted, StatusProposed},
		{StatusDeclined, StatusDraft},
	}
	for _, tc := range cases {
		r := &Room{Status: tc.from}
		if err := r.Transition(tc.to); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	r := &Room{Status: StatusDraft}
	if err := r.Transition("negotiating"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTerminalRoomsNotNegotiable(t *testing.T) {
	if !(&Room{Status: StatusProposed}).Negotiable() {
		t.Fatalf("proposed room must be negotiable")
	}
	if (&Room{Status: StatusAccepted}).Negotiable() {
		t.Fatalf("accepted room must not be negotiable")
	}
	if (&Room{Status: StatusDeclined}).Negotiable() {
		t.Fatalf("declined room must not be negotiable")
	}
}
