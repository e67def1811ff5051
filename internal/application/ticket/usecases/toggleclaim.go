package usecases

import (
	"context"

	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type ToggleClaimCommand struct {
	TicketID int
}

// ToggleClaimUseCase claims an unassigned ticket or releases one the ticket
// already has a handler for. Claiming changes fields the console cannot
// predict (assignee, status, audit entries), so the whole detail view is
// refetched afterwards instead of patched locally.
type ToggleClaimUseCase struct {
	gateway   TicketGateway
	getTicket GetTicketExecutor
	logger    logger.Interface
}

func NewToggleClaimUseCase(
	gateway TicketGateway,
	getTicket GetTicketExecutor,
	logger logger.Interface,
) *ToggleClaimUseCase {
	return &ToggleClaimUseCase{
		gateway:   gateway,
		getTicket: getTicket,
		logger:    logger,
	}
}

func (uc *ToggleClaimUseCase) Execute(ctx context.Context, cmd ToggleClaimCommand) (*TicketDetail, error) {
	if cmd.TicketID <= 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	current, err := uc.gateway.GetTicket(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if current.IsClaimed() {
		err = uc.gateway.UnclaimTicket(ctx, cmd.TicketID)
	} else {
		err = uc.gateway.ClaimTicket(ctx, cmd.TicketID)
	}
	if err != nil {
		uc.logger.Errorw("claim toggle failed",
			"ticket_id", cmd.TicketID,
			"was_claimed", current.IsClaimed(),
			"error", err)
		return nil, err
	}

	uc.logger.Infow("claim toggled", "ticket_id", cmd.TicketID, "was_claimed", current.IsClaimed())
	return uc.getTicket.Execute(ctx, GetTicketQuery{TicketID: cmd.TicketID})
}
