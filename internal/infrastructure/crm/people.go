package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"reachdesk/internal/domain/contact"
)

// SearchPeople runs an incremental search over people by name, email, or id.
// An empty query is the caller's responsibility to short-circuit; this
// method always hits the network.
func (c *Client) SearchPeople(ctx context.Context, q string) ([]contact.Person, error) {
	query := url.Values{}
	query.Set("q", q)

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/people/search/", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}

	people, _, err := decodeList[contact.Person](raw)
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}
	return people, nil
}

// ListPeopleWithRelations fetches one page of people with their tags and
// group memberships expanded.
func (c *Client) ListPeopleWithRelations(ctx context.Context, params contact.ListFilter) ([]contact.PersonWithRelations, int64, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.GroupID != nil {
		query.Set("group", strconv.Itoa(*params.GroupID))
	}
	if params.TagID != nil {
		query.Set("tag", strconv.Itoa(*params.TagID))
	}

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/people/with-relations/", query, nil, &raw); err != nil {
		return nil, 0, fmt.Errorf("list people: %w", err)
	}

	people, total, err := decodeList[contact.PersonWithRelations](raw)
	if err != nil {
		return nil, 0, fmt.Errorf("list people: %w", err)
	}
	return people, total, nil
}

// GetPerson fetches one person by Discord id.
func (c *Client) GetPerson(ctx context.Context, did string) (*contact.Person, error) {
	var p contact.Person
	if err := c.doRequest(ctx, http.MethodGet, "/api/people/"+url.PathEscape(did)+"/", nil, nil, &p); err != nil {
		return nil, fmt.Errorf("get person %s: %w", did, err)
	}
	return &p, nil
}

// CreatePersonWithTags creates a person and assigns tags in one call.
func (c *Client) CreatePersonWithTags(ctx context.Context, params contact.NewPersonInput) (*contact.Person, error) {
	var p contact.Person
	if err := c.doRequest(ctx, http.MethodPost, "/api/people/person-and-tags/", nil, params, &p); err != nil {
		return nil, fmt.Errorf("create person %s: %w", params.DID, err)
	}
	return &p, nil
}

// ListTags fetches all assignable tags.
func (c *Client) ListTags(ctx context.Context) ([]contact.Tag, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/tags/", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags, _, err := decodeList[contact.Tag](raw)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
