package usecases

import (
	"context"
	"fmt"

	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  int
	NewStatus string
}

// ChangeStatusUseCase moves a ticket to a new status. The transition is
// checked against the current status first so obviously invalid moves never
// reach the backend; the backend still has the final say, and its rejection
// passes through verbatim. The returned ticket is the server's full payload
// and must replace the caller's copy.
type ChangeStatusUseCase struct {
	gateway TicketGateway
	logger  logger.Interface
}

func NewChangeStatusUseCase(gateway TicketGateway, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ticket.Ticket, error) {
	if cmd.TicketID <= 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	current, err := uc.gateway.GetTicket(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !current.Status.CanTransitionTo(newStatus) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("cannot move ticket from %s to %s", current.Status.Display(), newStatus.Display()))
	}

	updated, err := uc.gateway.UpdateTicketStatus(ctx, cmd.TicketID, newStatus)
	if err != nil {
		uc.logger.Errorw("backend rejected status change",
			"ticket_id", cmd.TicketID,
			"from", current.Status,
			"to", newStatus,
			"error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID,
		"from", current.Status,
		"to", updated.Status)
	return updated, nil
}
