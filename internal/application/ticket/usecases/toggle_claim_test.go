package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
	"reachdesk/internal/shared/errors"
)

func claimedTicket(t *testing.T, id int, contact *string) *ticket.Ticket {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":            id,
		"title":         "Call Alice",
		"ticket_status": "OPEN",
		"ticket_type":   "RECRUIT",
		"priority":      2,
		"contact":       contact,
	})
	require.NoError(t, err)

	var tk ticket.Ticket
	require.NoError(t, json.Unmarshal(payload, &tk))
	return &tk
}

func newToggleClaimFixture(gateway *mockTicketGateway, responses *mockResponseGateway) *ToggleClaimUseCase {
	cache := NewResponseCache(responses, &mockLogger{})
	getTicket := NewGetTicketUseCase(gateway, cache, &mockLogger{})
	return NewToggleClaimUseCase(gateway, getTicket, &mockLogger{})
}

func TestToggleClaim_ClaimsUnassignedTicket(t *testing.T) {
	var claimed, unclaimed bool
	assignee := "123"
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, id int) (*ticket.Ticket, error) {
			if claimed {
				return claimedTicket(t, id, &assignee), nil
			}
			return claimedTicket(t, id, nil), nil
		},
		ClaimTicketFunc: func(ctx context.Context, id int) error {
			claimed = true
			return nil
		},
		UnclaimTicketFunc: func(ctx context.Context, id int) error {
			unclaimed = true
			return nil
		},
	}
	responses := &mockResponseGateway{
		ListResponsesByReachFunc: func(ctx context.Context, reachID int) ([]response.VolunteerResponse, error) {
			return []response.VolunteerResponse{
				{ID: 1, ReachID: reachID, PersonID: "123", Value: response.ValueAccepted},
			}, nil
		},
	}
	uc := newToggleClaimFixture(gateway, responses)

	detail, err := uc.Execute(context.Background(), ToggleClaimCommand{TicketID: 7})

	require.NoError(t, err)
	assert.True(t, claimed)
	assert.False(t, unclaimed)
	assert.True(t, detail.Ticket.IsClaimed(), "detail must reflect the refetched ticket")
	assert.Len(t, detail.Responses, 1, "responses must be resynced after the claim")
}

func TestToggleClaim_ReleasesClaimedTicket(t *testing.T) {
	var unclaimed bool
	assignee := "123"
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, id int) (*ticket.Ticket, error) {
			if unclaimed {
				return claimedTicket(t, id, nil), nil
			}
			return claimedTicket(t, id, &assignee), nil
		},
		ClaimTicketFunc: func(ctx context.Context, id int) error {
			t.Fatal("claim must not be called for an assigned ticket")
			return nil
		},
		UnclaimTicketFunc: func(ctx context.Context, id int) error {
			unclaimed = true
			return nil
		},
	}
	uc := newToggleClaimFixture(gateway, &mockResponseGateway{})

	detail, err := uc.Execute(context.Background(), ToggleClaimCommand{TicketID: 7})

	require.NoError(t, err)
	assert.True(t, unclaimed)
	assert.False(t, detail.Ticket.IsClaimed())
}

func TestToggleClaim_BackendFailurePropagates(t *testing.T) {
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, id int) (*ticket.Ticket, error) {
			return claimedTicket(t, id, nil), nil
		},
		ClaimTicketFunc: func(ctx context.Context, id int) error {
			return errors.NewUpstreamError(409, "backend request failed", `{"detail":"already claimed"}`)
		},
	}
	uc := newToggleClaimFixture(gateway, &mockResponseGateway{})

	_, err := uc.Execute(context.Background(), ToggleClaimCommand{TicketID: 7})

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
}
