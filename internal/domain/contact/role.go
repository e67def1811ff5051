package contact

import "fmt"

// RoleLevel is a person's console-wide access level. Level zero is an
// account awaiting approval, not "no access": a person without any
// GeneralRole record has no access at all.
type RoleLevel int

const (
	RoleNeedsApproval RoleLevel = 0
	RoleOrganizer     RoleLevel = 1
	RoleAdmin         RoleLevel = 2
)

func (r RoleLevel) IsValid() bool {
	switch r {
	case RoleNeedsApproval, RoleOrganizer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r RoleLevel) Display() string {
	switch r {
	case RoleNeedsApproval:
		return "Needs Approval"
	case RoleOrganizer:
		return "Organizer"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

func NewRoleLevel(v int) (RoleLevel, error) {
	r := RoleLevel(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("invalid role level: %d", v)
	}
	return r, nil
}

// GeneralRole is a person's global access assignment. One per person.
type GeneralRole struct {
	ID          int       `json:"id"`
	PersonID    string    `json:"did"`
	AccessLevel RoleLevel `json:"access_level"`
}
