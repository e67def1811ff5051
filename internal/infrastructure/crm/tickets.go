package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
)

// ListTickets fetches one page of tickets. The legacy revision has no
// paginated ticket endpoint, so it is served from the reaches surface.
func (c *Client) ListTickets(ctx context.Context, params ticket.ListFilter) ([]ticket.Ticket, int64, error) {
	if c.legacyNumeric {
		return c.listReachesAsTickets(ctx, params)
	}

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
	if params.Status != nil {
		query.Set("status", params.Status.String())
	}
	if params.Type != nil {
		query.Set("type", params.Type.String())
	}
	if params.Priority != nil {
		query.Set("priority", strconv.Itoa(int(*params.Priority)))
	}

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/tickets/", query, nil, &raw); err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}

	items, total, err := decodeList[ticket.Ticket](raw)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return items, total, nil
}

// GetTicket fetches a single ticket by id.
func (c *Client) GetTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	var t ticket.Ticket
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/%d", id), nil, nil, &t); err != nil {
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return &t, nil
}

// UpdateTicketStatus issues a partial update carrying only the status field
// and returns the server's full ticket payload. Callers must replace their
// whole local ticket with the result.
func (c *Client) UpdateTicketStatus(ctx context.Context, id int, status vo.TicketStatus) (*ticket.Ticket, error) {
	var body any
	if c.legacyNumeric {
		code, ok := status.LegacyCode()
		if !ok {
			return nil, fmt.Errorf("update ticket %d status: status %s has no legacy encoding", id, status)
		}
		body = map[string]int{"status": code}
	} else {
		body = map[string]string{"ticket_status": status.String()}
	}

	var t ticket.Ticket
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/tickets/%d/", id), nil, body, &t); err != nil {
		return nil, fmt.Errorf("update ticket %d status to %s: %w", id, status.Display(), err)
	}
	return &t, nil
}

// ClaimTicket assigns the calling user as the ticket's handler.
func (c *Client) ClaimTicket(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/claim", id), nil, nil, nil); err != nil {
		return fmt.Errorf("claim ticket %d: %w", id, err)
	}
	return nil
}

// UnclaimTicket removes the ticket's current handler.
func (c *Client) UnclaimTicket(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/tickets/%d/claim", id), nil, nil, nil); err != nil {
		return fmt.Errorf("unclaim ticket %d: %w", id, err)
	}
	return nil
}

// AddComment appends a comment to the ticket's audit log.
func (c *Client) AddComment(ctx context.Context, id int, message string) (*ticket.AuditEntry, error) {
	body := map[string]string{"message": message}

	var entry ticket.AuditEntry
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/comment/", id), nil, body, &entry); err != nil {
		return nil, fmt.Errorf("comment on ticket %d: %w", id, err)
	}
	return &entry, nil
}

// ListAuditLog fetches the ticket's activity entries, newest first.
func (c *Client) ListAuditLog(ctx context.Context, id int) ([]ticket.AuditEntry, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/%d/logs/", id), nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("list ticket %d audit log: %w", id, err)
	}

	entries, _, err := decodeList[ticket.AuditEntry](raw)
	if err != nil {
		return nil, fmt.Errorf("list ticket %d audit log: %w", id, err)
	}
	return entries, nil
}
