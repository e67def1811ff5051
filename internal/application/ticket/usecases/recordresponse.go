package usecases

import (
	"context"
	"sync"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

type RecordResponseCommand struct {
	TicketID int
	PersonID string
	Value    response.Value
}

// RecordResponseUseCase records a volunteer's accept/reject answer. The
// backend keys responses by (reach, person), so the first write for a pair
// must CREATE and every later write must UPDATE by composite key. Writes to
// the same pair are serialized on a per-key lock: two rapid clicks become
// one create followed by one update instead of two creates. A lock entry
// exists only while at least one write for its key is in flight.
type RecordResponseUseCase struct {
	gateway ResponseGateway
	cache   *ResponseCache
	logger  logger.Interface

	mu    sync.Mutex
	locks map[response.Key]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func NewRecordResponseUseCase(
	gateway ResponseGateway,
	cache *ResponseCache,
	logger logger.Interface,
) *RecordResponseUseCase {
	return &RecordResponseUseCase{
		gateway: gateway,
		cache:   cache,
		logger:  logger,
		locks:   make(map[response.Key]*keyedLock),
	}
}

func (uc *RecordResponseUseCase) Execute(ctx context.Context, cmd RecordResponseCommand) (*response.VolunteerResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid record response command", "error", err)
		return nil, err
	}

	key := response.Key{ReachID: cmd.TicketID, PersonID: cmd.PersonID}

	lock := uc.acquireKeyLock(key)
	defer uc.releaseKeyLock(key, lock)

	_, exists := uc.cache.Get(key)

	var (
		recorded *response.VolunteerResponse
		err      error
	)
	if exists {
		recorded, err = uc.gateway.UpdateResponseByKeys(ctx, key, cmd.Value)
	} else {
		recorded, err = uc.gateway.CreateResponse(ctx, key, cmd.Value)
		if err != nil && uc.isDuplicate(err) {
			// Another client created the row first; fall back to update.
			uc.logger.Infow("response already exists, updating instead", "key", key.String())
			recorded, err = uc.gateway.UpdateResponseByKeys(ctx, key, cmd.Value)
		}
	}
	if err != nil {
		uc.logger.Errorw("failed to record response", "key", key.String(), "value", cmd.Value, "error", err)
		return nil, err
	}

	uc.cache.Put(*recorded)
	uc.logger.Infow("response recorded", "key", key.String(), "value", recorded.Value.Display(), "id", recorded.ID)
	return recorded, nil
}

func (uc *RecordResponseUseCase) validateCommand(cmd RecordResponseCommand) error {
	if cmd.TicketID <= 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.PersonID == "" {
		return errors.NewValidationError("person ID is required")
	}
	if !cmd.Value.IsValid() {
		return errors.NewValidationError("response value must be accepted or rejected")
	}
	return nil
}

func (uc *RecordResponseUseCase) acquireKeyLock(key response.Key) *keyedLock {
	uc.mu.Lock()
	lock, ok := uc.locks[key]
	if !ok {
		lock = &keyedLock{}
		uc.locks[key] = lock
	}
	lock.refs++
	uc.mu.Unlock()

	lock.Lock()
	return lock
}

func (uc *RecordResponseUseCase) releaseKeyLock(key response.Key, lock *keyedLock) {
	lock.Unlock()

	uc.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(uc.locks, key)
	}
	uc.mu.Unlock()
}

func (uc *RecordResponseUseCase) isDuplicate(err error) bool {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return false
	}
	if appErr.Type == errors.ErrorTypeConflict {
		return true
	}
	return appErr.Type == errors.ErrorTypeUpstream && appErr.Code == 409
}
