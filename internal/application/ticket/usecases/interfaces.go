package usecases

import (
	"context"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
)

// TicketGateway is the slice of the CRM backend API the ticket use cases
// need. The backend is the single source of truth; nothing here persists
// locally.
type TicketGateway interface {
	ListTickets(ctx context.Context, params ticket.ListFilter) ([]ticket.Ticket, int64, error)
	GetTicket(ctx context.Context, id int) (*ticket.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id int, status vo.TicketStatus) (*ticket.Ticket, error)
	ClaimTicket(ctx context.Context, id int) error
	UnclaimTicket(ctx context.Context, id int) error
	AddComment(ctx context.Context, id int, message string) (*ticket.AuditEntry, error)
	ListAuditLog(ctx context.Context, id int) ([]ticket.AuditEntry, error)
}

// ResponseGateway is the volunteer-response slice of the CRM backend API.
type ResponseGateway interface {
	ListResponsesByReach(ctx context.Context, reachID int) ([]response.VolunteerResponse, error)
	CreateResponse(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error)
	UpdateResponseByKeys(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ticket.Ticket, error)
}

type ToggleClaimExecutor interface {
	Execute(ctx context.Context, cmd ToggleClaimCommand) (*TicketDetail, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.AuditEntry, error)
}

type RecordResponseExecutor interface {
	Execute(ctx context.Context, cmd RecordResponseCommand) (*response.VolunteerResponse, error)
}
