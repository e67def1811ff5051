package usecases

import (
	"context"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/logger"
)

type mockTicketGateway struct {
	ListTicketsFunc        func(ctx context.Context, params ticket.ListFilter) ([]ticket.Ticket, int64, error)
	GetTicketFunc          func(ctx context.Context, id int) (*ticket.Ticket, error)
	UpdateTicketStatusFunc func(ctx context.Context, id int, status vo.TicketStatus) (*ticket.Ticket, error)
	ClaimTicketFunc        func(ctx context.Context, id int) error
	UnclaimTicketFunc      func(ctx context.Context, id int) error
	AddCommentFunc         func(ctx context.Context, id int, message string) (*ticket.AuditEntry, error)
	ListAuditLogFunc       func(ctx context.Context, id int) ([]ticket.AuditEntry, error)
}

func (m *mockTicketGateway) ListTickets(ctx context.Context, params ticket.ListFilter) ([]ticket.Ticket, int64, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockTicketGateway) GetTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketGateway) UpdateTicketStatus(ctx context.Context, id int, status vo.TicketStatus) (*ticket.Ticket, error) {
	if m.UpdateTicketStatusFunc != nil {
		return m.UpdateTicketStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *mockTicketGateway) ClaimTicket(ctx context.Context, id int) error {
	if m.ClaimTicketFunc != nil {
		return m.ClaimTicketFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketGateway) UnclaimTicket(ctx context.Context, id int) error {
	if m.UnclaimTicketFunc != nil {
		return m.UnclaimTicketFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketGateway) AddComment(ctx context.Context, id int, message string) (*ticket.AuditEntry, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, id, message)
	}
	return nil, nil
}

func (m *mockTicketGateway) ListAuditLog(ctx context.Context, id int) ([]ticket.AuditEntry, error) {
	if m.ListAuditLogFunc != nil {
		return m.ListAuditLogFunc(ctx, id)
	}
	return nil, nil
}

type mockResponseGateway struct {
	ListResponsesByReachFunc func(ctx context.Context, reachID int) ([]response.VolunteerResponse, error)
	CreateResponseFunc       func(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error)
	UpdateResponseByKeysFunc func(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error)
}

func (m *mockResponseGateway) ListResponsesByReach(ctx context.Context, reachID int) ([]response.VolunteerResponse, error) {
	if m.ListResponsesByReachFunc != nil {
		return m.ListResponsesByReachFunc(ctx, reachID)
	}
	return nil, nil
}

func (m *mockResponseGateway) CreateResponse(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error) {
	if m.CreateResponseFunc != nil {
		return m.CreateResponseFunc(ctx, key, value)
	}
	return nil, nil
}

func (m *mockResponseGateway) UpdateResponseByKeys(ctx context.Context, key response.Key, value response.Value) (*response.VolunteerResponse, error) {
	if m.UpdateResponseByKeysFunc != nil {
		return m.UpdateResponseByKeysFunc(ctx, key, value)
	}
	return nil, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
