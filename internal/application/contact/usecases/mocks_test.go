package usecases

import (
	"context"
	"fmt"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/logger"
)

type mockPeopleGateway struct {
	SearchPeopleFunc            func(ctx context.Context, q string) ([]contact.Person, error)
	ListPeopleWithRelationsFunc func(ctx context.Context, params contact.ListFilter) ([]contact.PersonWithRelations, int64, error)
	GetPersonFunc               func(ctx context.Context, did string) (*contact.Person, error)
	CreatePersonWithTagsFunc    func(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error)
	ListTagsFunc                func(ctx context.Context) ([]contact.Tag, error)
}

func (m *mockPeopleGateway) SearchPeople(ctx context.Context, q string) ([]contact.Person, error) {
	if m.SearchPeopleFunc != nil {
		return m.SearchPeopleFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockPeopleGateway) ListPeopleWithRelations(ctx context.Context, params contact.ListFilter) ([]contact.PersonWithRelations, int64, error) {
	if m.ListPeopleWithRelationsFunc != nil {
		return m.ListPeopleWithRelationsFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockPeopleGateway) GetPerson(ctx context.Context, did string) (*contact.Person, error) {
	if m.GetPersonFunc != nil {
		return m.GetPersonFunc(ctx, did)
	}
	return nil, nil
}

func (m *mockPeopleGateway) CreatePersonWithTags(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error) {
	if m.CreatePersonWithTagsFunc != nil {
		return m.CreatePersonWithTagsFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockPeopleGateway) ListTags(ctx context.Context) ([]contact.Tag, error) {
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx)
	}
	return nil, nil
}

type mockSearchCache struct {
	GetFunc        func(ctx context.Context, query string) ([]contact.Person, error)
	SetFunc        func(ctx context.Context, query string, people []contact.Person) error
	InvalidateFunc func(ctx context.Context) error
}

func (m *mockSearchCache) Get(ctx context.Context, query string) ([]contact.Person, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, query)
	}
	return nil, fmt.Errorf("cache miss")
}

func (m *mockSearchCache) Set(ctx context.Context, query string, people []contact.Person) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, query, people)
	}
	return nil
}

func (m *mockSearchCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type mockSearchExecutor struct {
	ExecuteFunc func(ctx context.Context, query SearchPeopleQuery) (*SearchPeopleResult, error)
}

func (m *mockSearchExecutor) Execute(ctx context.Context, query SearchPeopleQuery) (*SearchPeopleResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return &SearchPeopleResult{Query: query.Query, People: []contact.Person{}}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
