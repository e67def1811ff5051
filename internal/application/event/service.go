// Package event serves the events pages: listings, detail, and attendance
// rosters fetched from the CRM backend.
package event

import (
	"context"

	"reachdesk/internal/domain/event"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

// Gateway is the events slice of the CRM backend API.
type Gateway interface {
	ListEvents(ctx context.Context, groupID *int) ([]event.Event, error)
	GetEvent(ctx context.Context, eid int) (*event.Event, error)
	ListParticipants(ctx context.Context, eid int) ([]event.Participant, error)
}

// Detail is an event with its attendance roster.
type Detail struct {
	Event        event.Event
	Participants []event.Participant
}

type Service struct {
	gateway Gateway
	logger  logger.Interface
}

func NewService(gateway Gateway, logger logger.Interface) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *Service) ListEvents(ctx context.Context, groupID *int) ([]event.Event, error) {
	if groupID != nil && *groupID <= 0 {
		return nil, errors.NewValidationError("group ID must be positive")
	}

	events, err := s.gateway.ListEvents(ctx, groupID)
	if err != nil {
		s.logger.Errorw("failed to list events", "error", err)
		return nil, err
	}
	return events, nil
}

func (s *Service) GetEventDetail(ctx context.Context, eid int) (*Detail, error) {
	if eid <= 0 {
		return nil, errors.NewValidationError("event ID is required")
	}

	e, err := s.gateway.GetEvent(ctx, eid)
	if err != nil {
		s.logger.Errorw("failed to get event", "eid", eid, "error", err)
		return nil, err
	}

	participants, err := s.gateway.ListParticipants(ctx, eid)
	if err != nil {
		// The roster is secondary; the page still renders the event.
		s.logger.Warnw("failed to list participants", "eid", eid, "error", err)
		participants = nil
	}

	return &Detail{
		Event:        *e,
		Participants: participants,
	}, nil
}
