package usecases

import (
	"context"
	"sync"
	"time"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/logger"
)

// SearchEvent is one delivered search outcome. Seq orders outcomes by the
// keystroke that caused them.
type SearchEvent struct {
	Seq    uint64
	Query  string
	People []contact.Person
	Err    error
}

// DebouncedSearcher sits between keystrokes and the search use case. Each
// Submit restarts a debounce timer, so only the query the user settled on is
// executed. Every submission gets a sequence number; an outcome is delivered
// only if no outcome with a higher sequence has been delivered yet, so a
// slow response for an old query can never overwrite newer results.
type DebouncedSearcher struct {
	search   SearchPeopleExecutor
	debounce time.Duration
	logger   logger.Interface

	mu        sync.Mutex
	seq       uint64
	delivered uint64
	timer     *time.Timer
	closed    bool

	events chan SearchEvent
}

func NewDebouncedSearcher(search SearchPeopleExecutor, debounce time.Duration, logger logger.Interface) *DebouncedSearcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &DebouncedSearcher{
		search:   search,
		debounce: debounce,
		logger:   logger,
		events:   make(chan SearchEvent, 16),
	}
}

// Events delivers search outcomes in sequence order, stale ones dropped.
func (s *DebouncedSearcher) Events() <-chan SearchEvent {
	return s.events
}

// Submit registers a keystroke. The search runs once the debounce window
// passes without another Submit.
func (s *DebouncedSearcher) Submit(ctx context.Context, query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.seq
	}

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.runSearch(ctx, seq, query)
	})

	return seq
}

// Close stops the pending timer and closes the event channel.
func (s *DebouncedSearcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	close(s.events)
}

func (s *DebouncedSearcher) runSearch(ctx context.Context, seq uint64, query string) {
	// A newer submission may already be pending; skip the network call.
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	result, err := s.search.Execute(ctx, SearchPeopleQuery{Query: query})

	event := SearchEvent{Seq: seq, Query: query, Err: err}
	if result != nil {
		event.Query = result.Query
		event.People = result.People
	}
	s.deliver(event)
}

// deliver publishes an outcome unless a newer one already went out.
func (s *DebouncedSearcher) deliver(event SearchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if event.Seq <= s.delivered {
		s.logger.Debugw("dropping stale search result", "seq", event.Seq, "delivered", s.delivered, "query", event.Query)
		return
	}
	s.delivered = event.Seq

	select {
	case s.events <- event:
	default:
		s.logger.Warnw("search event dropped, consumer too slow", "seq", event.Seq)
	}
}
