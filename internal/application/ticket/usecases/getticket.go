package usecases

import (
	"context"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID int
}

// TicketDetail is everything the ticket page shows: the server's ticket
// payload, the recorded responses keyed by person id, the activity feed,
// and the status transitions the current status allows.
type TicketDetail struct {
	Ticket           ticket.Ticket
	Responses        map[string]response.VolunteerResponse
	AuditLog         []ticket.AuditEntry
	AvailableActions []vo.TicketStatus
}

type GetTicketUseCase struct {
	gateway TicketGateway
	cache   *ResponseCache
	logger  logger.Interface
}

func NewGetTicketUseCase(gateway TicketGateway, cache *ResponseCache, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		gateway: gateway,
		cache:   cache,
		logger:  logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	if query.TicketID <= 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.gateway.GetTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	// A failed reload keeps the last good entries; the page still renders.
	if err := uc.cache.Reload(ctx, query.TicketID); err != nil {
		uc.logger.Warnw("serving ticket with stale responses", "ticket_id", query.TicketID, "error", err)
	}

	auditLog, err := uc.gateway.ListAuditLog(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to list audit log", "ticket_id", query.TicketID, "error", err)
		auditLog = nil
	}

	return &TicketDetail{
		Ticket:           *t,
		Responses:        uc.cache.Snapshot(query.TicketID),
		AuditLog:         auditLog,
		AvailableActions: t.AvailableActions(),
	}, nil
}
