package ticket

import (
	"encoding/json"

	vo "reachdesk/internal/domain/ticket/valueobjects"
)

// Ticket is the console's read model of a backend ticket. The backend owns
// the entity; the console never mutates a Ticket in place. Every write goes
// to the backend and the whole Ticket is replaced with the server payload,
// so derived fields like the status display name are never invented locally.
type Ticket struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      vo.TicketStatus `json:"ticket_status"`
	Type        vo.TicketType   `json:"ticket_type"`
	Priority    vo.Priority     `json:"priority"`
	Contact     *string         `json:"contact"`
	CreatedAt   string          `json:"created_at"`
	ModifiedAt  string          `json:"modified_at"`

	// raw holds the exact server payload this view was built from, including
	// fields the struct does not model. Replacing the view keeps them.
	raw json.RawMessage
}

// UnmarshalJSON decodes the backend payload and retains it verbatim.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type alias Ticket
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = Ticket(a)
	t.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the retained server payload when present, so fields the
// console does not model survive a round trip to the browser.
func (t Ticket) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	type alias Ticket
	return json.Marshal(alias(t))
}

// Raw returns the unmodified server payload, or nil for locally built values.
func (t *Ticket) Raw() json.RawMessage {
	return t.raw
}

// IsClaimed reports whether a contact is assigned to handle the ticket.
func (t *Ticket) IsClaimed() bool {
	return t.Contact != nil && *t.Contact != ""
}

// AvailableActions lists the status transitions the console should offer.
// Terminal tickets get none.
func (t *Ticket) AvailableActions() []vo.TicketStatus {
	return t.Status.AvailableTransitions()
}
