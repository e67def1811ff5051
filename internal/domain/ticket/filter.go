package ticket

import (
	vo "reachdesk/internal/domain/ticket/valueobjects"
)

// ListFilter narrows a ticket listing. Nil pointer fields mean no filter.
type ListFilter struct {
	Page     int
	PageSize int
	Query    string
	Status   *vo.TicketStatus
	Type     *vo.TicketType
	Priority *vo.Priority
}
