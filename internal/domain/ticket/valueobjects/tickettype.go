package valueobjects

import "fmt"

type TicketType string

const (
	TypeUnknown      TicketType = "UNKNOWN"
	TypeIntroduction TicketType = "INTRODUCTION"
	TypeRecruit      TicketType = "RECRUIT"
	TypeConfirm      TicketType = "CONFIRM"
)

var validTicketTypes = map[TicketType]bool{
	TypeUnknown:      true,
	TypeIntroduction: true,
	TypeRecruit:      true,
	TypeConfirm:      true,
}

var ticketTypeDisplay = map[TicketType]string{
	TypeUnknown:      "Unknown",
	TypeIntroduction: "Introduction",
	TypeRecruit:      "Recruit for event",
	TypeConfirm:      "Confirm event participation",
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) Display() string {
	if d, ok := ticketTypeDisplay[tt]; ok {
		return d
	}
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
