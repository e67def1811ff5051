package usecases

import (
	"context"
	"strings"

	"reachdesk/internal/domain/ticket"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID int
	Message  string
}

type AddCommentUseCase struct {
	gateway TicketGateway
	logger  logger.Interface
}

func NewAddCommentUseCase(gateway TicketGateway, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.AuditEntry, error) {
	if cmd.TicketID <= 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	message := strings.TrimSpace(cmd.Message)
	if message == "" {
		return nil, errors.NewValidationError("comment message is required")
	}

	entry, err := uc.gateway.AddComment(ctx, cmd.TicketID, message)
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "entry_id", entry.ID)
	return entry, nil
}
