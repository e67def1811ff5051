package handlers

import (
	"reachdesk/internal/application/ticket/usecases"
	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
)

// TicketDetailResponse is the ticket page payload: the server's ticket,
// recorded responses keyed by person id, the activity feed, and the status
// transitions the page should offer as buttons.
type TicketDetailResponse struct {
	Ticket           ticket.Ticket                         `json:"ticket"`
	Responses        map[string]response.VolunteerResponse `json:"responses"`
	AuditLog         []ticket.AuditEntry                   `json:"audit_log"`
	AvailableActions []string                              `json:"available_actions"`
}

func newTicketDetailResponse(detail *usecases.TicketDetail) TicketDetailResponse {
	actions := make([]string, 0, len(detail.AvailableActions))
	for _, a := range detail.AvailableActions {
		actions = append(actions, a.String())
	}

	return TicketDetailResponse{
		Ticket:           detail.Ticket,
		Responses:        detail.Responses,
		AuditLog:         detail.AuditLog,
		AvailableActions: actions,
	}
}
