// Package memory implements every repository port over in-process maps.
// It is the default storage driver and the backing store used by tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/ports"
)

type progressKey struct {
	userID  uuid.UUID
	routeID uuid.UUID
}

// Store holds every record kind behind one RWMutex: reads run concurrently,
// writes serialize, and each upsert performs its lookup-merge-store cycle
// inside a single critical section. Construct one per process (or per test)
// and inject it; there is no package-level instance.
type Store struct {
	mu sync.RWMutex

	users      map[uuid.UUID]*domain.User
	routes     map[uuid.UUID]*domain.Route
	routeOrder []uuid.UUID
	progress   map[progressKey]*domain.RouteProgress
	saved      map[progressKey]*domain.SavedRoute
	savedOrder []progressKey

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:    make(map[uuid.UUID]*domain.User),
		routes:   make(map[uuid.UUID]*domain.Route),
		progress: make(map[progressKey]*domain.RouteProgress),
		saved:    make(map[progressKey]*domain.SavedRoute),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// The store exposes one repository view per record kind, all sharing the
// same lock and maps.

type UserRepo struct{ store *Store }

type RouteRepo struct{ store *Store }

type ProgressRepo struct{ store *Store }

type SavedRouteRepo struct{ store *Store }

func (s *Store) Users() *UserRepo            { return &UserRepo{store: s} }
func (s *Store) Routes() *RouteRepo          { return &RouteRepo{store: s} }
func (s *Store) Progress() *ProgressRepo     { return &ProgressRepo{store: s} }
func (s *Store) SavedRoutes() *SavedRouteRepo { return &SavedRouteRepo{store: s} }

var (
	_ ports.UserRepository       = (*UserRepo)(nil)
	_ ports.RouteRepository      = (*RouteRepo)(nil)
	_ ports.ProgressRepository   = (*ProgressRepo)(nil)
	_ ports.SavedRouteRepository = (*SavedRouteRepo)(nil)
)

// Records are copied on the way in and out so callers can never observe a
// half-applied write through a shared pointer.

func cloneUser(u *domain.User) *domain.User {
	out := *u
	return &out
}

func cloneRoute(r *domain.Route) *domain.Route {
	out := *r
	out.Stops = append(domain.StopList{}, r.Stops...)
	return &out
}

func cloneProgress(p *domain.RouteProgress) *domain.RouteProgress {
	out := *p
	out.PhotosShared = append(domain.PhotoList{}, p.PhotosShared...)
	return &out
}

func cloneSavedRoute(s *domain.SavedRoute) *domain.SavedRoute {
	out := *s
	return &out
}
