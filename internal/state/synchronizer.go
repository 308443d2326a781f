package state

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
	"github.com/tazman887/rork-organizator-nunta/internal/store"
)

// Status is the sync indicator surfaced to callers. Local state is never
// rolled back on failure; only durability of the remote copy is at risk.
type Status string

const (
	StatusSynced  Status = "synced"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultRetryBackoff = 2 * time.Second
)

// Synchronizer merges partial updates into the cached document, publishes
// the result immediately and persists it remotely after a debounce
// window. Rapid successive updates coalesce into a single remote write
// carrying the newest document.
type Synchronizer struct {
	cache  *Cache
	remote store.DocumentStore
	local  store.DocumentStore

	clock    Clock
	debounce time.Duration
	backoff  time.Duration
	onStatus func(Status)

	mu       sync.Mutex
	timer    Timer
	timerSeq uint64
	gen      uint64
	pending  *domain.Document
	dirty    bool
	status   Status
}

type Option func(*Synchronizer)

func WithDebounce(d time.Duration) Option {
	return func(s *Synchronizer) { s.debounce = d }
}

func WithRetryBackoff(d time.Duration) Option {
	return func(s *Synchronizer) { s.backoff = d }
}

func WithClock(c Clock) Option {
	return func(s *Synchronizer) { s.clock = c }
}

// WithStatusFunc registers a callback invoked on every status change.
func WithStatusFunc(fn func(Status)) Option {
	return func(s *Synchronizer) { s.onStatus = fn }
}

// New builds a synchronizer over the given cache and remote store. local
// may be nil when no local snapshot store is in use.
func New(cache *Cache, remote, local store.DocumentStore, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		cache:    cache,
		remote:   remote,
		local:    local,
		clock:    realClock{},
		debounce: DefaultDebounce,
		backoff:  DefaultRetryBackoff,
		status:   StatusSynced,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the cached document, or empty defaults before the
// initial load completes. Operations never fail for lack of data.
func (s *Synchronizer) Current() domain.Document {
	if doc, ok := s.cache.Current(); ok {
		return doc
	}
	return domain.Empty()
}

// Status reports the last observed sync state.
func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Load seeds the cache: the remote snapshot wins, falling back to the
// local snapshot and finally to empty defaults. Load never fails the
// caller; degraded reads are logged and treated as "no data yet".
func (s *Synchronizer) Load(ctx context.Context) {
	doc, err := s.remote.Fetch(ctx)
	if err != nil {
		log.WithError(err).Warn("remote snapshot fetch failed, falling back to local")
	}
	if doc != nil {
		s.cache.Replace(*doc)
		s.saveLocal(ctx, doc)
		log.WithField("guests", len(doc.Guests)).Info("snapshot loaded from remote")
		return
	}

	if s.local != nil {
		local, err := s.local.Fetch(ctx)
		if err != nil {
			log.WithError(err).Warn("local snapshot read failed")
		}
		if local != nil {
			s.cache.Replace(*local)
			log.WithField("guests", len(local.Guests)).Info("snapshot loaded from local store")
			return
		}
	}

	s.cache.Replace(domain.Empty())
	log.Info("no snapshot found, starting empty")
}

// ApplyPartial merges update into the current document, publishes the
// result optimistically and schedules the debounced remote persist. A
// newly scheduled persist cancels and supersedes the previous pending
// one, so intermediate states are never individually persisted.
func (s *Synchronizer) ApplyPartial(update domain.Patch) {
	s.mu.Lock()
	cur, ok := s.cache.Current()
	if !ok {
		cur = domain.Empty()
	}
	next := cur.Apply(update)

	s.cache.Replace(next)
	s.saveLocal(context.Background(), &next)

	if s.timer != nil {
		s.timer.Stop()
	}
	// A superseded timer may already have fired without running yet; the
	// sequence number lets its callback recognize it lost the race.
	s.timerSeq++
	seq := s.timerSeq
	s.gen++
	s.pending = &next
	s.dirty = true
	s.setStatusLocked(StatusPending)
	s.timer = s.clock.AfterFunc(s.debounce, func() { s.flushPending(seq) })
	s.mu.Unlock()
}

// Flush sends any pending persist immediately. Used at shutdown so the
// debounce window does not drop the last edits.
func (s *Synchronizer) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerSeq++
	doc := s.pending
	s.pending = nil
	s.mu.Unlock()

	if doc != nil {
		s.persist(ctx, doc)
	}
}

// Restore overwrites the whole document and persists it right away,
// bypassing the debounce. This is the import/restore boundary.
func (s *Synchronizer) Restore(ctx context.Context, doc domain.Document) {
	doc.Normalize()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerSeq++
	s.gen++
	s.pending = nil
	s.dirty = true
	s.mu.Unlock()

	s.cache.Replace(doc)
	s.saveLocal(ctx, &doc)
	s.persist(ctx, &doc)
}

// RunRefresh re-pulls the remote snapshot on an interval until ctx is
// cancelled. A tick is skipped while local changes await persisting, so a
// pull can never clobber an edit that has not been pushed yet.
func (s *Synchronizer) RunRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval.String()).Info("refresh loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info("refresh loop stopped")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Synchronizer) refresh(ctx context.Context) {
	s.mu.Lock()
	busy := s.dirty || s.pending != nil
	gen := s.gen
	s.mu.Unlock()
	if busy {
		log.Debug("skipping refresh, local changes pending")
		return
	}

	doc, err := s.remote.Fetch(ctx)
	if err != nil {
		log.WithError(err).Warn("refresh fetch failed")
		return
	}
	if doc == nil {
		return
	}

	// An edit may have landed while the fetch was in flight; the fetched
	// snapshot predates it and must not replace it.
	s.mu.Lock()
	if s.dirty || s.pending != nil || s.gen != gen {
		s.mu.Unlock()
		log.Debug("discarding refresh result, local changes arrived mid-pull")
		return
	}
	s.cache.Replace(*doc)
	s.saveLocal(ctx, doc)
	s.mu.Unlock()
}

func (s *Synchronizer) flushPending(seq uint64) {
	s.mu.Lock()
	if seq != s.timerSeq {
		// A newer edit rescheduled the window after this timer fired; that
		// schedule owns the pending document and the timer handle now.
		s.mu.Unlock()
		return
	}
	doc := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if doc != nil {
		s.persist(context.Background(), doc)
	}
}

// persist writes doc to the remote store, retrying once after a backoff.
// Failures keep local state authoritative: they are logged and surfaced
// through the status callback, never rolled back.
func (s *Synchronizer) persist(ctx context.Context, doc *domain.Document) {
	err := s.remote.Put(ctx, doc)
	if err == nil {
		s.markSynced()
		return
	}
	if errors.Is(err, store.ErrNotConfigured) {
		log.Debug("remote store not configured, snapshot kept local only")
		s.markSynced()
		return
	}

	log.WithError(err).Warn("remote save failed, retrying")
	time.Sleep(s.backoff)

	if err := s.remote.Put(ctx, doc); err != nil {
		log.WithError(err).Error("remote save failed after retry, local state kept")
		s.setStatus(StatusFailed)
		return
	}
	s.markSynced()
}

func (s *Synchronizer) markSynced() {
	s.mu.Lock()
	// A newer edit may have arrived while this persist was in flight; it
	// owns the dirty flag and status then.
	if s.pending == nil {
		s.dirty = false
		s.setStatusLocked(StatusSynced)
	}
	s.mu.Unlock()
}

func (s *Synchronizer) setStatus(st Status) {
	s.mu.Lock()
	s.setStatusLocked(st)
	s.mu.Unlock()
}

func (s *Synchronizer) setStatusLocked(st Status) {
	if s.status == st {
		return
	}
	s.status = st
	if s.onStatus != nil {
		go s.onStatus(st)
	}
}

func (s *Synchronizer) saveLocal(ctx context.Context, doc *domain.Document) {
	if s.local == nil {
		return
	}
	if err := s.local.Put(ctx, doc); err != nil {
		log.WithError(err).Warn("local snapshot write failed")
	}
}
