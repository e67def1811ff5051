// Package response models a volunteer's accept/reject decision against a
// single reach. A response is identified by the composite (reach id, person
// id) key; the backend holds at most one record per key.
package response

import "fmt"

// Value is the canonical response encoding: 1 accepted, 2 rejected.
// The older backend revision used 0 rejected / 1 accepted, which
// ValueFromLegacy converts.
type Value int

const (
	ValueAccepted Value = 1
	ValueRejected Value = 2
)

func (v Value) IsValid() bool {
	return v == ValueAccepted || v == ValueRejected
}

func (v Value) Display() string {
	switch v {
	case ValueAccepted:
		return "Accepted"
	case ValueRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

func NewValue(v int) (Value, error) {
	value := Value(v)
	if !value.IsValid() {
		return 0, fmt.Errorf("invalid response value: %d", v)
	}
	return value, nil
}

// ValueFromLegacy converts the 0=rejected/1=accepted revision.
func ValueFromLegacy(v int) (Value, error) {
	switch v {
	case 0:
		return ValueRejected, nil
	case 1:
		return ValueAccepted, nil
	default:
		return 0, fmt.Errorf("invalid legacy response value: %d", v)
	}
}

// Key is the composite identity of a volunteer response. Neither field alone
// is unique; the pair is.
type Key struct {
	ReachID  int
	PersonID string
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s", k.ReachID, k.PersonID)
}

// VolunteerResponse is the backend's record of one volunteer's decision.
// ID is assigned by the backend on create; the console never fabricates it.
type VolunteerResponse struct {
	ID       int    `json:"id"`
	ReachID  int    `json:"rid"`
	PersonID string `json:"did"`
	Value    Value  `json:"response"`
}

// Key returns the record's composite identity.
func (r VolunteerResponse) Key() Key {
	return Key{ReachID: r.ReachID, PersonID: r.PersonID}
}
