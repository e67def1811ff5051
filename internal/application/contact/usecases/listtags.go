package usecases

import (
	"context"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/logger"
)

type ListTagsUseCase struct {
	gateway PeopleGateway
	logger  logger.Interface
}

func NewListTagsUseCase(gateway PeopleGateway, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]contact.Tag, error) {
	tags, err := uc.gateway.ListTags(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	return tags, nil
}
