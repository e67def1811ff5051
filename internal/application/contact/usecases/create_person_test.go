package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/errors"
)

func TestCreatePerson_Success(t *testing.T) {
	var gotInput contact.NewPersonInput
	var invalidated bool
	gateway := &mockPeopleGateway{
		CreatePersonWithTagsFunc: func(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error) {
			gotInput = params
			return &contact.Person{DID: params.DID, Name: params.Name, Email: params.Email}, nil
		},
	}
	cache := &mockSearchCache{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated = true
			return nil
		},
	}
	uc := NewCreatePersonUseCase(gateway, cache, &mockLogger{})

	email := "alice@example.org"
	person, err := uc.Execute(context.Background(), CreatePersonCommand{
		DID:    "123456789",
		Name:   "Alice",
		Email:  &email,
		TagIDs: []int{1, 4},
	})

	require.NoError(t, err)
	assert.Equal(t, "123456789", person.DID)
	assert.Equal(t, []int{1, 4}, gotInput.TagIDs)
	assert.True(t, invalidated, "search cache must be invalidated after a create")
}

func TestCreatePerson_Validation(t *testing.T) {
	badEmail := "not-an-email"
	tests := []struct {
		name string
		cmd  CreatePersonCommand
	}{
		{"missing did", CreatePersonCommand{Name: "Alice"}},
		{"non-numeric did", CreatePersonCommand{DID: "abc", Name: "Alice"}},
		{"missing name", CreatePersonCommand{DID: "123"}},
		{"bad email", CreatePersonCommand{DID: "123", Name: "Alice", Email: &badEmail}},
		{"bad tag id", CreatePersonCommand{DID: "123", Name: "Alice", TagIDs: []int{0}}},
	}

	gateway := &mockPeopleGateway{
		CreatePersonWithTagsFunc: func(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error) {
			t.Fatal("invalid command must not reach the backend")
			return nil, nil
		},
	}
	uc := NewCreatePersonUseCase(gateway, &mockSearchCache{}, &mockLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreatePerson_BackendConflictPropagates(t *testing.T) {
	gateway := &mockPeopleGateway{
		CreatePersonWithTagsFunc: func(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error) {
			return nil, errors.NewUpstreamError(409, "backend request failed", `{"did":["person already exists"]}`)
		},
	}
	uc := NewCreatePersonUseCase(gateway, &mockSearchCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreatePersonCommand{DID: "123", Name: "Alice"})

	assert.True(t, errors.IsUpstreamError(err))
}
