package usecases

import (
	"context"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type GetPersonQuery struct {
	PersonID string
}

type GetPersonUseCase struct {
	gateway PeopleGateway
	logger  logger.Interface
}

func NewGetPersonUseCase(gateway PeopleGateway, logger logger.Interface) *GetPersonUseCase {
	return &GetPersonUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *GetPersonUseCase) Execute(ctx context.Context, query GetPersonQuery) (*contact.Person, error) {
	if query.PersonID == "" {
		return nil, errors.NewValidationError("person ID is required")
	}

	person, err := uc.gateway.GetPerson(ctx, query.PersonID)
	if err != nil {
		uc.logger.Errorw("failed to get person", "did", query.PersonID, "error", err)
		return nil, err
	}

	return person, nil
}
