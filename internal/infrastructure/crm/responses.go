package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"reachdesk/internal/domain/response"
)

// responsePayload is the wire shape of a volunteer response. The value field
// passes through encodeValue/decodeValue so the legacy 0/1 revision and the
// canonical 1/2 revision both map onto response.Value.
type responsePayload struct {
	ID       int    `json:"id,omitempty"`
	ReachID  int    `json:"rid"`
	PersonID string `json:"did"`
	Response int    `json:"response"`
}

func (c *Client) encodeValue(v response.Value) int {
	if c.legacyNumeric {
		if v == response.ValueAccepted {
			return 1
		}
		return 0
	}
	return int(v)
}

func (c *Client) decodeValue(raw int) (response.Value, error) {
	if c.legacyNumeric {
		return response.ValueFromLegacy(raw)
	}
	return response.NewValue(raw)
}

func (c *Client) toDomain(p responsePayload) (response.VolunteerResponse, error) {
	value, err := c.decodeValue(p.Response)
	if err != nil {
		return response.VolunteerResponse{}, err
	}
	return response.VolunteerResponse{
		ID:       p.ID,
		ReachID:  p.ReachID,
		PersonID: p.PersonID,
		Value:    value,
	}, nil
}

// ListResponsesByReach fetches every recorded response for one reach.
func (c *Client) ListResponsesByReach(ctx context.Context, reachID int) ([]response.VolunteerResponse, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/volunteer-responses/by-reach/%d/", reachID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list responses for reach %d: %w", reachID, err)
	}

	payloads, _, err := decodeList[responsePayload](raw)
	if err != nil {
		return nil, fmt.Errorf("list responses for reach %d: %w", reachID, err)
	}

	out := make([]response.VolunteerResponse, 0, len(payloads))
	for _, p := range payloads {
		r, err := c.toDomain(p)
		if err != nil {
			return nil, fmt.Errorf("list responses for reach %d: %w", reachID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// CreateResponse records a brand-new response for a (reach, person) pair.
// The returned record carries the backend-assigned id.
func (c *Client) CreateResponse(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error) {
	body := responsePayload{
		ReachID:  key.ReachID,
		PersonID: key.PersonID,
		Response: c.encodeValue(value),
	}

	var created responsePayload
	if err := c.doRequest(ctx, http.MethodPost, "/api/volunteer-responses/", nil, body, &created); err != nil {
		return nil, fmt.Errorf("create response %s: %w", key, err)
	}

	r, err := c.toDomain(created)
	if err != nil {
		return nil, fmt.Errorf("create response %s: %w", key, err)
	}
	return &r, nil
}

// UpdateResponseByKeys amends the existing response addressed by its
// composite key. The backend resolves the row; the console never needs the
// record id for this.
func (c *Client) UpdateResponseByKeys(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error) {
	body := responsePayload{
		ReachID:  key.ReachID,
		PersonID: key.PersonID,
		Response: c.encodeValue(value),
	}

	var updated responsePayload
	if err := c.doRequest(ctx, http.MethodPatch, "/api/volunteer-responses/update-by-keys/", nil, body, &updated); err != nil {
		return nil, fmt.Errorf("update response %s: %w", key, err)
	}

	r, err := c.toDomain(updated)
	if err != nil {
		return nil, fmt.Errorf("update response %s: %w", key, err)
	}
	return &r, nil
}
