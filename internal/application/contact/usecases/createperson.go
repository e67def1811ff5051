package usecases

import (
	"context"

	"github.com/go-playground/validator/v10"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type CreatePersonCommand struct {
	DID    string  `validate:"required,numeric"`
	Name   string  `validate:"required,max=200"`
	Email  *string `validate:"omitempty,email"`
	Phone  *string `validate:"omitempty,e164"`
	TagIDs []int   `validate:"dive,gt=0"`
}

// CreatePersonUseCase creates a person with initial tags in one backend
// call. Cached search results are invalidated afterwards so the new person
// shows up on the next keystroke.
type CreatePersonUseCase struct {
	gateway  PeopleGateway
	cache    SearchResultCache
	validate *validator.Validate
	logger   logger.Interface
}

func NewCreatePersonUseCase(
	gateway PeopleGateway,
	cache SearchResultCache,
	logger logger.Interface,
) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		gateway:  gateway,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

func (uc *CreatePersonUseCase) Execute(ctx context.Context, cmd CreatePersonCommand) (*contact.Person, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		uc.logger.Errorw("invalid create person command", "error", err)
		return nil, errors.NewValidationError("invalid person data", err.Error())
	}

	person, err := uc.gateway.CreatePersonWithTags(ctx, contact.NewPersonInput{
		DID:    cmd.DID,
		Name:   cmd.Name,
		Email:  cmd.Email,
		Phone:  cmd.Phone,
		TagIDs: cmd.TagIDs,
	})
	if err != nil {
		uc.logger.Errorw("failed to create person", "did", cmd.DID, "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate search cache", "error", err)
		}
	}

	uc.logger.Infow("person created", "did", person.DID, "name", person.Name)
	return person, nil
}
