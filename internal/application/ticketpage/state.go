// Package ticketpage models the ticket page's mutable state as a pure
// reducer. Handlers translate backend results into events; Reduce folds them
// into the next state. Keeping this free of HTTP makes every state change
// unit-testable.
package ticketpage

import (
	"reachdesk/internal/domain/contact"
	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
)

// State is everything the ticket page shows at one moment. Values are
// replaced wholesale by events, never merged field by field.
type State struct {
	Ticket    *ticket.Ticket
	Responses map[string]response.VolunteerResponse
	AuditLog  []ticket.AuditEntry

	SearchSeq     uint64
	SearchQuery   string
	SearchResults []contact.Person

	Err error
}

// Event is a marker for anything Reduce can fold into a State.
type Event interface {
	isTicketPageEvent()
}

// TicketLoaded replaces the whole detail view, as after a first load or a
// claim/unclaim resync.
type TicketLoaded struct {
	Ticket    *ticket.Ticket
	Responses map[string]response.VolunteerResponse
	AuditLog  []ticket.AuditEntry
}

// TicketReplaced swaps in the server's ticket payload after a status change
// without touching responses or search.
type TicketReplaced struct {
	Ticket *ticket.Ticket
}

// ResponseRecorded upserts one confirmed response.
type ResponseRecorded struct {
	Response response.VolunteerResponse
}

// SearchResults delivers one search outcome. Seq orders outcomes; stale
// ones are ignored.
type SearchResults struct {
	Seq    uint64
	Query  string
	People []contact.Person
}

// SearchCleared resets the search box.
type SearchCleared struct{}

// Failed records an error to surface on the page.
type Failed struct {
	Err error
}

// ErrorDismissed clears the surfaced error.
type ErrorDismissed struct{}

func (TicketLoaded) isTicketPageEvent()     {}
func (TicketReplaced) isTicketPageEvent()   {}
func (ResponseRecorded) isTicketPageEvent() {}
func (SearchResults) isTicketPageEvent()    {}
func (SearchCleared) isTicketPageEvent()    {}
func (Failed) isTicketPageEvent()           {}
func (ErrorDismissed) isTicketPageEvent()   {}

// Reduce returns the state after applying one event. The input state is
// never mutated; unknown events return it unchanged.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case TicketLoaded:
		state.Ticket = e.Ticket
		state.Responses = copyResponses(e.Responses)
		state.AuditLog = append([]ticket.AuditEntry(nil), e.AuditLog...)
		state.Err = nil
		return state

	case TicketReplaced:
		state.Ticket = e.Ticket
		state.Err = nil
		return state

	case ResponseRecorded:
		responses := copyResponses(state.Responses)
		responses[e.Response.PersonID] = e.Response
		state.Responses = responses
		state.Err = nil
		return state

	case SearchResults:
		if e.Seq <= state.SearchSeq {
			return state
		}
		state.SearchSeq = e.Seq
		state.SearchQuery = e.Query
		state.SearchResults = append([]contact.Person(nil), e.People...)
		return state

	case SearchCleared:
		state.SearchQuery = ""
		state.SearchResults = nil
		return state

	case Failed:
		state.Err = e.Err
		return state

	case ErrorDismissed:
		state.Err = nil
		return state

	default:
		return state
	}
}

func copyResponses(in map[string]response.VolunteerResponse) map[string]response.VolunteerResponse {
	out := make(map[string]response.VolunteerResponse, len(in))
	for did, r := range in {
		out[did] = r
	}
	return out
}
