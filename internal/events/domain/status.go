package domain

import "fmt"

// Status is the lifecycle state of an event.
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusVenueSelected   Status = "venue_selected"
	StatusCompleted       Status = "completed"
)

// Action is a lifecycle mutation applied to an event.
type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionSelectVenue Action = "select_venue"
	ActionComplete    Action = "complete"
)

// transitions is the full lifecycle table. Anything not listed here is
// an illegal move. Rejected and completed are terminal: a rejected
// proposal is resubmitted as a new event, never resurrected.
var transitions = map[Status]map[Action]Status{
	StatusPendingApproval: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionSelectVenue: StatusVenueSelected,
		// The department may withdraw an earlier approval as long as no
		// venue has been assigned. Every decision lands in the audit log.
		ActionReject: StatusRejected,
	},
	StatusVenueSelected: {
		ActionComplete: StatusCompleted,
	},
}

// Transition returns the status that applying action to current yields,
// or ErrInvalidTransition if the table has no such edge.
func Transition(current Status, action Action) (Status, error) {
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	return "", fmt.Errorf("%w: cannot %s event in status %q", ErrInvalidTransition, action, current)
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusRejected, StatusVenueSelected, StatusCompleted:
		return true
	}
	return false
}
