package usecases

import (
	"context"
	"fmt"
	"sync"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/shared/logger"
)

// ResponseCache holds the volunteer responses the console has seen, indexed
// by ticket id and then person id. It is a read-through view over the
// backend: Reload replaces a ticket's entries wholesale from a fresh fetch,
// and a failed fetch leaves the previous entries untouched so the page keeps
// showing the last good data.
type ResponseCache struct {
	mu      sync.RWMutex
	byReach map[int]map[string]response.VolunteerResponse

	gateway ResponseGateway
	logger  logger.Interface
}

func NewResponseCache(gateway ResponseGateway, logger logger.Interface) *ResponseCache {
	return &ResponseCache{
		byReach: make(map[int]map[string]response.VolunteerResponse),
		gateway: gateway,
		logger:  logger,
	}
}

// Reload fetches every response for the ticket and replaces the cached set.
// On error the cache keeps whatever it held before.
func (c *ResponseCache) Reload(ctx context.Context, reachID int) error {
	responses, err := c.gateway.ListResponsesByReach(ctx, reachID)
	if err != nil {
		c.logger.Warnw("response reload failed, keeping cached entries", "reach_id", reachID, "error", err)
		return fmt.Errorf("reload responses for reach %d: %w", reachID, err)
	}

	entries := make(map[string]response.VolunteerResponse, len(responses))
	for _, r := range responses {
		entries[r.PersonID] = r
	}

	c.mu.Lock()
	c.byReach[reachID] = entries
	c.mu.Unlock()

	c.logger.Debugw("response cache reloaded", "reach_id", reachID, "count", len(entries))
	return nil
}

// Get returns the cached response for one person on one ticket.
func (c *ResponseCache) Get(key response.Key) (response.VolunteerResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, ok := c.byReach[key.ReachID]
	if !ok {
		return response.VolunteerResponse{}, false
	}
	r, ok := entries[key.PersonID]
	return r, ok
}

// Snapshot returns a copy of all cached responses for one ticket.
func (c *ResponseCache) Snapshot(reachID int) map[string]response.VolunteerResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := c.byReach[reachID]
	out := make(map[string]response.VolunteerResponse, len(entries))
	for did, r := range entries {
		out[did] = r
	}
	return out
}

// Put records a single confirmed write without disturbing other entries.
func (c *ResponseCache) Put(r response.VolunteerResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.byReach[r.ReachID]
	if !ok {
		entries = make(map[string]response.VolunteerResponse)
		c.byReach[r.ReachID] = entries
	}
	entries[r.PersonID] = r
}

// Drop discards the cached entries for one ticket.
func (c *ResponseCache) Drop(reachID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byReach, reachID)
}
