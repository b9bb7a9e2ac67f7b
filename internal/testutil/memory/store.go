// Package memory provides in-memory implementations of the persistence ports.
// The reservation store enforces the same no-overlap guard as the database
// exclusion constraint so admission tests exercise real conflict paths.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
)

type txKey struct{}

type tx struct {
	undo []func()
}

// Store holds all entities behind one mutex and implements persistence.UnitOfWork
type Store struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*entity.Reservation
	users        map[string]*entity.User
	assets       map[uint64]*entity.Asset
	fines        map[uuid.UUID]*entity.Fine
	locks        map[string]lockEntry
	now          func() time.Time

	// UpdateStatusErr, when set, is returned by the next UpdateStatus call
	UpdateStatusErr error
	// Begins counts started transactions
	Begins int
}

type lockEntry struct {
	owner     string
	expiresAt time.Time
}

// NewStore creates an empty store. now drives lock expiry and may be nil.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		reservations: make(map[uuid.UUID]*entity.Reservation),
		users:        make(map[string]*entity.User),
		assets:       make(map[uint64]*entity.Asset),
		fines:        make(map[uuid.UUID]*entity.Fine),
		locks:        make(map[string]lockEntry),
		now:          now,
	}
}

// AddUser seeds a user
func (s *Store) AddUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.ID] = &cp
}

// AddAsset seeds an asset
func (s *Store) AddAsset(a *entity.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.assets[a.ID] = &cp
}

// AddReservation seeds a reservation without the overlap guard
func (s *Store) AddReservation(r *entity.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	s.reservations[cp.ID] = &cp
}

// Reservation returns a copy of a stored reservation
func (s *Store) Reservation(id uuid.UUID) (*entity.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	cp := *r
	return &cp, true
}

// Reservations returns copies of all stored reservations
func (s *Store) Reservations() []*entity.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// User returns a copy of a stored user
func (s *Store) User(id string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

// HeldLocks returns the number of unexpired locks
func (s *Store) HeldLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.locks {
		if l.expiresAt.After(s.now()) {
			n++
		}
	}
	return n
}

// Begin implements persistence.UnitOfWork
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	s.Begins++
	s.mu.Unlock()
	return context.WithValue(ctx, txKey{}, &tx{}), nil
}

// Commit implements persistence.UnitOfWork
func (s *Store) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return errs.ErrInternalServer
	}
	t.undo = nil
	return nil
}

// Rollback implements persistence.UnitOfWork
func (s *Store) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return errs.ErrInternalServer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

// GetReservationRepository implements persistence.UnitOfWork
func (s *Store) GetReservationRepository(ctx context.Context) persistence.ReservationRepository {
	return &ReservationRepository{store: s, tx: txFrom(ctx)}
}

// GetUserRepository implements persistence.UnitOfWork
func (s *Store) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &UserRepository{store: s, tx: txFrom(ctx)}
}

// GetFineRepository implements persistence.UnitOfWork
func (s *Store) GetFineRepository(ctx context.Context) persistence.FineRepository {
	return &FineRepository{store: s, tx: txFrom(ctx)}
}

// Assets returns the asset repository
func (s *Store) Assets() *AssetRepository {
	return &AssetRepository{store: s}
}

// Locks returns the admission lock repository
func (s *Store) Locks() *LockRepository {
	return &LockRepository{store: s}
}

func txFrom(ctx context.Context) *tx {
	t, _ := ctx.Value(txKey{}).(*tx)
	return t
}

// record registers an undo step; the caller holds s.mu
func record(t *tx, undo func()) {
	if t != nil {
		t.undo = append(t.undo, undo)
	}
}
