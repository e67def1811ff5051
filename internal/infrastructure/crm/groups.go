package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"reachdesk/internal/domain/contact"
)

// ListGroups fetches all groups.
func (c *Client) ListGroups(ctx context.Context) ([]contact.Group, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/groups/", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	groups, _, err := decodeList[contact.Group](raw)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// CreateGroup creates a group with the given name.
func (c *Client) CreateGroup(ctx context.Context, name string) (*contact.Group, error) {
	var g contact.Group
	body := map[string]string{"name": name}
	if err := c.doRequest(ctx, http.MethodPost, "/api/groups/", nil, body, &g); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return &g, nil
}

// DeleteGroup removes a group. Memberships cascade on the backend.
func (c *Client) DeleteGroup(ctx context.Context, gid int) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/groups/%d/", gid), nil, nil, nil); err != nil {
		return fmt.Errorf("delete group %d: %w", gid, err)
	}
	return nil
}

// ListMemberships fetches the volunteer-in-group rows for one group.
func (c *Client) ListMemberships(ctx context.Context, gid int) ([]contact.Membership, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/groups/%d/volunteers/", gid)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list memberships for group %d: %w", gid, err)
	}

	members, _, err := decodeList[contact.Membership](raw)
	if err != nil {
		return nil, fmt.Errorf("list memberships for group %d: %w", gid, err)
	}
	return members, nil
}

// membershipPayload is the volunteer-in-group write shape.
type membershipPayload struct {
	PersonID    string `json:"did"`
	GroupID     int    `json:"gid"`
	AccessLevel int    `json:"access_level"`
}

// AddMembership adds a person to a group at the given access level.
func (c *Client) AddMembership(ctx context.Context, did string, gid int, access contact.GroupAccess) (*contact.Membership, error) {
	body := membershipPayload{PersonID: did, GroupID: gid, AccessLevel: int(access)}

	var m contact.Membership
	if err := c.doRequest(ctx, http.MethodPost, "/api/volunteers-in-groups/", nil, body, &m); err != nil {
		return nil, fmt.Errorf("add %s to group %d: %w", did, gid, err)
	}
	return &m, nil
}

// UpdateMembership changes a membership's access level.
func (c *Client) UpdateMembership(ctx context.Context, id int, access contact.GroupAccess) (*contact.Membership, error) {
	body := map[string]int{"access_level": int(access)}

	var m contact.Membership
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/volunteers-in-groups/%d/", id), nil, body, &m); err != nil {
		return nil, fmt.Errorf("update membership %d: %w", id, err)
	}
	return &m, nil
}

// RemoveMembership removes a person from a group.
func (c *Client) RemoveMembership(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/volunteers-in-groups/%d/", id), nil, nil, nil); err != nil {
		return fmt.Errorf("remove membership %d: %w", id, err)
	}
	return nil
}

// ListGeneralRoles fetches every site-wide role grant.
func (c *Client) ListGeneralRoles(ctx context.Context) ([]contact.GeneralRole, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/general-roles/", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list general roles: %w", err)
	}

	roles, _, err := decodeList[contact.GeneralRole](raw)
	if err != nil {
		return nil, fmt.Errorf("list general roles: %w", err)
	}
	return roles, nil
}

// GrantGeneralRole creates a site-wide role grant for a person.
func (c *Client) GrantGeneralRole(ctx context.Context, did string, level contact.RoleLevel) (*contact.GeneralRole, error) {
	body := map[string]any{"did": did, "access_level": int(level)}

	var r contact.GeneralRole
	if err := c.doRequest(ctx, http.MethodPost, "/api/general-roles/", nil, body, &r); err != nil {
		return nil, fmt.Errorf("grant role to %s: %w", did, err)
	}
	return &r, nil
}

// UpdateGeneralRole changes the level of an existing grant.
func (c *Client) UpdateGeneralRole(ctx context.Context, id int, level contact.RoleLevel) (*contact.GeneralRole, error) {
	body := map[string]int{"access_level": int(level)}

	var r contact.GeneralRole
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/general-roles/%d/", id), nil, body, &r); err != nil {
		return nil, fmt.Errorf("update role %d: %w", id, err)
	}
	return &r, nil
}

// RevokeGeneralRole deletes a site-wide role grant.
func (c *Client) RevokeGeneralRole(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/general-roles/%d/", id), nil, nil, nil); err != nil {
		return fmt.Errorf("revoke role %d: %w", id, err)
	}
	return nil
}
