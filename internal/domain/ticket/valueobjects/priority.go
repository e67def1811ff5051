package valueobjects

import "fmt"

// Priority is the canonical urgency encoding: higher value means more urgent.
// One backend revision encodes the opposite (lower = more urgent) on a 0-4
// scale; PriorityFromLegacyAscending converts that revision.
type Priority int

const (
	// legacyPriorityScale is the top of the ascending-urgency revision's range.
	legacyPriorityScale = 4

	PriorityMin Priority = 0
	PriorityMax Priority = legacyPriorityScale
)

func (p Priority) IsValid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

// Label renders the priority the way the console displays it, e.g. "P3".
func (p Priority) Label() string {
	return fmt.Sprintf("P%d", int(p))
}

// MoreUrgentThan orders priorities by urgency under the canonical encoding.
func (p Priority) MoreUrgentThan(other Priority) bool {
	return p > other
}

func NewPriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority: %d", v)
	}
	return p, nil
}

// PriorityFromLegacyAscending converts the revision where lower values are
// more urgent by mirroring the value onto the canonical scale.
func PriorityFromLegacyAscending(v int) (Priority, error) {
	if v < 0 || v > legacyPriorityScale {
		return 0, fmt.Errorf("invalid legacy priority: %d", v)
	}
	return Priority(legacyPriorityScale - v), nil
}
