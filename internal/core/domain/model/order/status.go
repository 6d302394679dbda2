package order

import (
	"strings"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> PROCESSING ──> SHIPPED ──> DELIVERED
//	   │             │
//	   └─────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Processing indicates the seller has started fulfilment.
	Processing

	// Shipped indicates the order has been handed to a carrier.
	Shipped

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	Processing: "PROCESSING",
	Shipped:    "SHIPPED",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
}

var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
}

// ParseStatus converts an external status name into a Status. Matching ignores
// case and surrounding spaces, so " shipped " parses as Shipped.
//
// Returns *InvalidStatusValueError for anything that is not one of the five
// canonical names.
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, NewInvalidStatusValueError(value)
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// String returns the canonical upper-case name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate checks that s is one of the five defined statuses. It is used when
// restoring orders from storage.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return NewInvalidStatusValueError(s.String())
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether target is listed for s in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move from s is allowed, otherwise
// *IllegalTransitionError carrying both states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, NewIllegalTransitionError(s, target)
	}
	return target, nil
}
