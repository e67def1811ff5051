package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"reachdesk/internal/domain/event"
)

// ListEvents fetches events, optionally restricted to one group.
func (c *Client) ListEvents(ctx context.Context, groupID *int) ([]event.Event, error) {
	var query url.Values
	if groupID != nil {
		query = url.Values{}
		query.Set("group", strconv.Itoa(*groupID))
	}

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/events/", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events, _, err := decodeList[event.Event](raw)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, eid int) (*event.Event, error) {
	var e event.Event
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d/", eid), nil, nil, &e); err != nil {
		return nil, fmt.Errorf("get event %d: %w", eid, err)
	}
	return &e, nil
}

// ListParticipants fetches the attendance roster for one event.
func (c *Client) ListParticipants(ctx context.Context, eid int) ([]event.Participant, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/events/%d/participants/", eid)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list participants for event %d: %w", eid, err)
	}

	participants, _, err := decodeList[event.Participant](raw)
	if err != nil {
		return nil, fmt.Errorf("list participants for event %d: %w", eid, err)
	}
	return participants, nil
}
