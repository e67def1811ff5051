package contact

import "fmt"

// Group is an organization/team volunteers can belong to.
type Group struct {
	GID  int    `json:"gid"`
	Name string `json:"name"`
}

// GroupAccess is the per-group access level of a membership.
type GroupAccess int

const (
	GroupAccessView GroupAccess = 1
	GroupAccessEdit GroupAccess = 2
)

func (a GroupAccess) IsValid() bool {
	return a == GroupAccessView || a == GroupAccessEdit
}

func (a GroupAccess) Display() string {
	switch a {
	case GroupAccessView:
		return "View"
	case GroupAccessEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

func NewGroupAccess(v int) (GroupAccess, error) {
	a := GroupAccess(v)
	if !a.IsValid() {
		return 0, fmt.Errorf("invalid group access level: %d", v)
	}
	return a, nil
}

// Membership links a person to a group with an access level. One membership
// per (person, group) pair.
type Membership struct {
	ID          int         `json:"id"`
	PersonID    string      `json:"did"`
	GroupID     int         `json:"gid"`
	AccessLevel GroupAccess `json:"access_level"`
}
