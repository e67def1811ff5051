package usecases

import (
	"context"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type ListPeopleQuery struct {
	Page     int
	PageSize int
	Query    string
	GroupID  *int
	TagID    *int
}

type ListPeopleResult struct {
	People     []contact.PersonWithRelations
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListPeopleUseCase struct {
	gateway PeopleGateway
	logger  logger.Interface
}

func NewListPeopleUseCase(gateway PeopleGateway, logger logger.Interface) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *ListPeopleUseCase) Execute(ctx context.Context, query ListPeopleQuery) (*ListPeopleResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	people, total, err := uc.gateway.ListPeopleWithRelations(ctx, contact.ListFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Query:    NormalizeQuery(query.Query),
		GroupID:  query.GroupID,
		TagID:    query.TagID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list people", "error", err)
		return nil, err
	}

	return &ListPeopleResult{
		People:     people,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
