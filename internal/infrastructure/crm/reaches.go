package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/utils"
)

// reachPayload is the numeric-status revision's wire shape. It predates the
// ticket endpoints: integer statuses 0-4, ascending-urgency priorities, and
// reach-specific field names.
type reachPayload struct {
	RID         int     `json:"rid"`
	Status      int     `json:"status"`
	Assigned    *string `json:"assigned"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Priority    int     `json:"priority"`
}

// toTicket maps a legacy reach onto the canonical ticket view.
func (r reachPayload) toTicket() (ticket.Ticket, error) {
	status, err := vo.StatusFromLegacyCode(r.Status)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("reach %d: %w", r.RID, err)
	}
	priority, err := vo.PriorityFromLegacyAscending(r.Priority)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("reach %d: %w", r.RID, err)
	}

	return ticket.Ticket{
		ID:          r.RID,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Type:        vo.TypeUnknown,
		Priority:    priority,
		Contact:     r.Assigned,
	}, nil
}

// listReachesAsTickets serves the ticket list from the legacy reaches
// surface, which is unpaginated and sorted by urgency on the backend. The
// by-status and by-type endpoints do the filtering server-side; pagination
// is applied locally over the full result.
func (c *Client) listReachesAsTickets(ctx context.Context, params ticket.ListFilter) ([]ticket.Ticket, int64, error) {
	path := "/api/reaches/priority/"
	switch {
	case params.Status != nil:
		code, ok := params.Status.LegacyCode()
		if !ok {
			// CANCELED does not exist in the numeric revision.
			return []ticket.Ticket{}, 0, nil
		}
		path = fmt.Sprintf("/api/reaches/by-status/%d/", code)
	case params.Type != nil:
		path = fmt.Sprintf("/api/reaches/by-type/%s/", strings.ToLower(params.Type.String()))
	}

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, 0, fmt.Errorf("list reaches: %w", err)
	}

	payloads, _, err := decodeList[reachPayload](raw)
	if err != nil {
		return nil, 0, fmt.Errorf("list reaches: %w", err)
	}

	tickets := make([]ticket.Ticket, 0, len(payloads))
	for _, p := range payloads {
		t, err := p.toTicket()
		if err != nil {
			return nil, 0, fmt.Errorf("list reaches: %w", err)
		}
		tickets = append(tickets, t)
	}

	total := int64(len(tickets))
	pagination := utils.ValidatePagination(params.Page, params.PageSize)
	start := (pagination.Page - 1) * pagination.PageSize
	end := start + pagination.PageSize
	if start > len(tickets) {
		start = len(tickets)
	}
	if end > len(tickets) {
		end = len(tickets)
	}

	return tickets[start:end], total, nil
}
