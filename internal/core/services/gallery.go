package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"artwork-gallery/internal/core/domain"
	output "artwork-gallery/internal/core/ports/output"
)

const fetchLogWriteTimeout = 5 * time.Second

// GalleryService owns the gallery view state. The state only changes through
// domain.Reduce, and every change is pushed to subscribers.
type GalleryService struct {
	client   output.ArtworkClient
	fetchLog output.FetchLogRepository
	limit    int

	// ctx bounds background fetches; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	state   domain.ViewState
	subs    map[int]chan domain.ViewState
	nextSub int
	closed  bool

	now func() time.Time
}

// NewGalleryService creates a new gallery service. fetchLog may be nil.
func NewGalleryService(
	client output.ArtworkClient,
	fetchLog output.FetchLogRepository,
	limit int,
) *GalleryService {
	if limit <= 0 {
		limit = domain.DefaultArtworkLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &GalleryService{
		client:   client,
		fetchLog: fetchLog,
		limit:    limit,
		ctx:      ctx,
		cancel:   cancel,
		state:    domain.InitialViewState(),
		subs:     make(map[int]chan domain.ViewState),
		now:      time.Now,
	}
}

// State returns the current view state.
func (s *GalleryService) State() domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers for state changes. Each subscriber holds at most one
// pending state; a slow reader only sees the latest. The returned func
// unsubscribes and closes the channel.
func (s *GalleryService) Subscribe() (<-chan domain.ViewState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.ViewState, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// Fetch starts loading one page of artworks. Loading is set before Fetch
// returns; the request itself runs in the background. The returned channel
// receives the settled state once and is then closed.
func (s *GalleryService) Fetch() (<-chan domain.ViewState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrGalleryClosed
	}
	if s.state.Loading {
		s.mu.Unlock()
		return nil, domain.ErrFetchInProgress
	}
	id := uuid.New()
	s.applyLocked(domain.FetchStarted{ID: id})
	s.wg.Add(1)
	s.mu.Unlock()

	log.WithField("fetch_id", id).Debug("fetch started")

	done := make(chan domain.ViewState, 1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		done <- s.run(id)
	}()
	return done, nil
}

func (s *GalleryService) run(id uuid.UUID) domain.ViewState {
	startedAt := s.now()

	var result domain.FetchResult
	artworks, err := s.client.ListArtworks(s.ctx, s.limit)
	if err != nil {
		result = domain.Failed(err)
	} else {
		result = domain.Succeeded(artworks)
	}
	finishedAt := s.now()

	entry := log.WithFields(log.Fields{
		"fetch_id":    id,
		"duration_ms": finishedAt.Sub(startedAt).Milliseconds(),
	})
	if result.OK() {
		entry.WithField("count", len(artworks)).Info("fetch completed")
	} else {
		entry.WithError(err).Warn("fetch failed")
	}

	s.mu.Lock()
	st := s.applyLocked(domain.FetchCompleted{ID: id, Result: result})
	s.mu.Unlock()

	s.record(domain.NewFetchRecord(id, startedAt, finishedAt, result))
	return st
}

// applyLocked reduces the action into the state and notifies subscribers.
// s.mu must be held.
func (s *GalleryService) applyLocked(action domain.Action) domain.ViewState {
	s.state = domain.Reduce(s.state, action)
	for _, ch := range s.subs {
		select {
		case ch <- s.state:
		default:
			// Drop the stale pending state in favour of the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.state:
			default:
			}
		}
	}
	return s.state
}

func (s *GalleryService) record(rec *domain.FetchRecord) {
	if s.fetchLog == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), fetchLogWriteTimeout)
	defer cancel()
	if err := s.fetchLog.Create(ctx, rec); err != nil {
		log.WithError(err).WithField("fetch_id", rec.ID).Warn("write fetch log failed")
	}
}

// RecentFetches returns the newest fetch log entries first.
func (s *GalleryService) RecentFetches(ctx context.Context, limit int) ([]*domain.FetchRecord, error) {
	if s.fetchLog == nil {
		return nil, domain.ErrFetchLogDisabled
	}
	if limit < 1 || limit > 100 {
		return nil, domain.ErrInvalidLimit
	}
	return s.fetchLog.ListRecent(ctx, limit)
}

// FetchLogEnabled reports whether fetches are being recorded.
func (s *GalleryService) FetchLogEnabled() bool {
	return s.fetchLog != nil
}

// Close cancels in-flight fetches, waits for them to settle and then ends
// every subscription. It is safe to call more than once.
func (s *GalleryService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
