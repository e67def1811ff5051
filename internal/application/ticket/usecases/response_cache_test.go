package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/shared/errors"
)

func TestResponseCache_ReloadReplacesWholesale(t *testing.T) {
	fetched := []response.VolunteerResponse{
		{ID: 1, ReachID: 7, PersonID: "123", Value: response.ValueAccepted},
	}
	gateway := &mockResponseGateway{
		ListResponsesByReachFunc: func(ctx context.Context, reachID int) ([]response.VolunteerResponse, error) {
			return fetched, nil
		},
	}
	cache := NewResponseCache(gateway, &mockLogger{})

	// An entry that no longer exists on the backend.
	cache.Put(response.VolunteerResponse{ID: 2, ReachID: 7, PersonID: "456", Value: response.ValueRejected})

	require.NoError(t, cache.Reload(context.Background(), 7))

	snapshot := cache.Snapshot(7)
	assert.Len(t, snapshot, 1)
	_, gone := snapshot["456"]
	assert.False(t, gone, "reload must drop entries missing from the backend")
	assert.Equal(t, response.ValueAccepted, snapshot["123"].Value)
}

func TestResponseCache_FailedReloadKeepsEntries(t *testing.T) {
	gateway := &mockResponseGateway{
		ListResponsesByReachFunc: func(ctx context.Context, reachID int) ([]response.VolunteerResponse, error) {
			return nil, errors.NewUpstreamError(500, "backend request failed")
		},
	}
	cache := NewResponseCache(gateway, &mockLogger{})
	cache.Put(response.VolunteerResponse{ID: 1, ReachID: 7, PersonID: "123", Value: response.ValueAccepted})

	err := cache.Reload(context.Background(), 7)

	require.Error(t, err)
	snapshot := cache.Snapshot(7)
	require.Len(t, snapshot, 1)
	assert.Equal(t, response.ValueAccepted, snapshot["123"].Value)
}

func TestResponseCache_SnapshotIsACopy(t *testing.T) {
	cache := NewResponseCache(&mockResponseGateway{}, &mockLogger{})
	cache.Put(response.VolunteerResponse{ID: 1, ReachID: 7, PersonID: "123", Value: response.ValueAccepted})

	snapshot := cache.Snapshot(7)
	delete(snapshot, "123")

	_, ok := cache.Get(response.Key{ReachID: 7, PersonID: "123"})
	assert.True(t, ok, "mutating a snapshot must not touch the cache")
}

func TestResponseCache_DropDiscardsOneTicket(t *testing.T) {
	cache := NewResponseCache(&mockResponseGateway{}, &mockLogger{})
	cache.Put(response.VolunteerResponse{ID: 1, ReachID: 7, PersonID: "123", Value: response.ValueAccepted})
	cache.Put(response.VolunteerResponse{ID: 2, ReachID: 8, PersonID: "123", Value: response.ValueRejected})

	cache.Drop(7)

	assert.Empty(t, cache.Snapshot(7))
	assert.Len(t, cache.Snapshot(8), 1)
}
