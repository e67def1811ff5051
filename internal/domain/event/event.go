// Package event models CRM events and their participants.
package event

// Event is an activity organized by a group. The date is an ISO string as
// stored by the backend; the console does not reinterpret it.
type Event struct {
	EID         int     `json:"eid"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	GroupID     int     `json:"group"`
}

// Participant links a person to an event.
type Participant struct {
	ID       int    `json:"id"`
	EventID  int    `json:"eid"`
	PersonID string `json:"did"`
}
