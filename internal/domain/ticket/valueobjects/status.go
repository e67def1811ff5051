package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusTodo       TicketStatus = "TODO"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusBlocked    TicketStatus = "BLOCKED"
	StatusCompleted  TicketStatus = "COMPLETED"
	StatusCanceled   TicketStatus = "CANCELED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusTodo:       true,
	StatusInProgress: true,
	StatusBlocked:    true,
	StatusCompleted:  true,
	StatusCanceled:   true,
}

// ticketStatusTransitions lists the transitions the console offers for each
// status. The backend remains the final authority on legality; this table
// only keeps the console from offering actions that cannot succeed, such as
// blocking a ticket that is already blocked.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusTodo,
		StatusInProgress,
		StatusBlocked,
		StatusCompleted,
		StatusCanceled,
	},
	StatusTodo: {
		StatusInProgress,
		StatusBlocked,
		StatusCompleted,
		StatusCanceled,
	},
	StatusInProgress: {
		StatusBlocked,
		StatusCompleted,
		StatusCanceled,
	},
	StatusBlocked: {
		StatusTodo,
		StatusInProgress,
		StatusCanceled,
	},
	StatusCompleted: {},
	StatusCanceled:  {},
}

var ticketStatusDisplay = map[TicketStatus]string{
	StatusOpen:       "Open",
	StatusTodo:       "To Do",
	StatusInProgress: "In Progress",
	StatusBlocked:    "Blocked",
	StatusCompleted:  "Completed",
	StatusCanceled:   "Canceled",
}

// legacyStatusCodes maps the numeric-status backend revision (0-4, no
// CANCELED) onto the canonical string statuses.
var legacyStatusCodes = map[int]TicketStatus{
	0: StatusOpen,
	1: StatusTodo,
	2: StatusInProgress,
	3: StatusBlocked,
	4: StatusCompleted,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) Display() string {
	if d, ok := ticketStatusDisplay[ts]; ok {
		return d
	}
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsTerminal reports whether the ticket can no longer change status.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusCanceled
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// AvailableTransitions returns the statuses the console should offer as
// actions from the current status.
func (ts TicketStatus) AvailableTransitions() []TicketStatus {
	allowed := ticketStatusTransitions[ts]
	out := make([]TicketStatus, len(allowed))
	copy(out, allowed)
	return out
}

// LegacyCode returns the 0-4 integer encoding of the status. The second
// return is false for CANCELED, which the numeric revision cannot represent.
func (ts TicketStatus) LegacyCode() (int, bool) {
	for code, status := range legacyStatusCodes {
		if status == ts {
			return code, true
		}
	}
	return 0, false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// StatusFromLegacyCode converts the numeric-status revision's 0-4 codes to
// the canonical status.
func StatusFromLegacyCode(code int) (TicketStatus, error) {
	ts, ok := legacyStatusCodes[code]
	if !ok {
		return "", fmt.Errorf("invalid legacy status code: %d", code)
	}
	return ts, nil
}
