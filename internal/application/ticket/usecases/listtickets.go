package usecases

import (
	"context"

	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Page     int
	PageSize int
	Query    string
	Status   string
	Type     string
	Priority *int
}

type ListTicketsResult struct {
	Tickets    []ticket.Ticket
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	gateway TicketGateway
	logger  logger.Interface
}

func NewListTicketsUseCase(gateway TicketGateway, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.ListFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Query:    query.Query,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}
	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.gateway.ListTickets(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:    tickets,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
