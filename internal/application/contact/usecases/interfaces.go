package usecases

import (
	"context"

	"reachdesk/internal/domain/contact"
)

// PeopleGateway is the people slice of the CRM backend API.
type PeopleGateway interface {
	SearchPeople(ctx context.Context, q string) ([]contact.Person, error)
	ListPeopleWithRelations(ctx context.Context, params contact.ListFilter) ([]contact.PersonWithRelations, int64, error)
	GetPerson(ctx context.Context, did string) (*contact.Person, error)
	CreatePersonWithTags(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error)
	ListTags(ctx context.Context) ([]contact.Tag, error)
}

// SearchResultCache is a short-TTL store for search results. A read error
// counts as a miss; the search falls through to the backend.
type SearchResultCache interface {
	Get(ctx context.Context, query string) ([]contact.Person, error)
	Set(ctx context.Context, query string, people []contact.Person) error
	Invalidate(ctx context.Context) error
}

type SearchPeopleExecutor interface {
	Execute(ctx context.Context, query SearchPeopleQuery) (*SearchPeopleResult, error)
}

type ListPeopleExecutor interface {
	Execute(ctx context.Context, query ListPeopleQuery) (*ListPeopleResult, error)
}

type CreatePersonExecutor interface {
	Execute(ctx context.Context, cmd CreatePersonCommand) (*contact.Person, error)
}

type GetPersonExecutor interface {
	Execute(ctx context.Context, query GetPersonQuery) (*contact.Person, error)
}

type ListTagsExecutor interface {
	Execute(ctx context.Context) ([]contact.Tag, error)
}
