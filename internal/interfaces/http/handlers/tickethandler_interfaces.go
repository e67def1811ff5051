package handlers

import (
	"context"

	"reachdesk/internal/application/ticket/usecases"
	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
)

// Use case interfaces for TicketHandler

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketDetail, error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*ticket.Ticket, error)
}

type toggleClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleClaimCommand) (*usecases.TicketDetail, error)
}

type addCommentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*ticket.AuditEntry, error)
}

type recordResponseUseCase interface {
	Execute(ctx context.Context, cmd usecases.RecordResponseCommand) (*response.VolunteerResponse, error)
}
