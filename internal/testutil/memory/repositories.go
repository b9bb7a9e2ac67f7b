package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
)

// ReservationRepository is an in-memory persistence.ReservationRepository
type ReservationRepository struct {
	store *Store
	tx    *tx
}

func matches(r *entity.Reservation, f persistence.ReservationFilter) bool {
	if f.AssetID != 0 && r.AssetID != f.AssetID {
		return false
	}
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if len(f.StatusIn) > 0 {
		found := false
		for _, s := range f.StatusIn {
			if r.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !f.StartFrom.IsZero() && r.StartTime.Before(f.StartFrom) {
		return false
	}
	if !f.StartBefore.IsZero() && !r.StartTime.Before(f.StartBefore) {
		return false
	}
	if !f.OverlapStart.IsZero() && !f.OverlapEnd.IsZero() && !r.Overlaps(f.OverlapStart, f.OverlapEnd) {
		return false
	}
	return true
}

// Query implements persistence.ReservationRepository
func (r *ReservationRepository) Query(_ context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Reservation
	for _, res := range r.store.reservations {
		if matches(res, filter) {
			cp := *res
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Count implements persistence.ReservationRepository
func (r *ReservationRepository) Count(ctx context.Context, filter persistence.ReservationFilter) (int, error) {
	filter.Limit, filter.Offset = 0, 0
	list, err := r.Query(ctx, filter)
	return len(list), err
}

// Create implements persistence.ReservationRepository and rejects overlapping active reservations
func (r *ReservationRepository) Create(_ context.Context, reservation *entity.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.reservations[reservation.ID]; exists {
		return errs.NewConflictError(errs.RuleAssetUnavailable, "reservation already exists", nil)
	}
	if reservation.Status.IsActive() {
		for _, existing := range r.store.reservations {
			if existing.AssetID == reservation.AssetID && existing.Status.IsActive() &&
				existing.Overlaps(reservation.StartTime, reservation.EndTime) {
				return errs.NewConflictError(errs.RuleAssetUnavailable, "asset is already reserved for the requested window", nil)
			}
		}
	}

	cp := *reservation
	r.store.reservations[cp.ID] = &cp
	id := cp.ID
	record(r.tx, func() { delete(r.store.reservations, id) })
	return nil
}

// GetByID implements persistence.ReservationRepository
func (r *ReservationRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

// UpdateStatus implements persistence.ReservationRepository
func (r *ReservationRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.ReservationStatus, at time.Time) (*entity.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.UpdateStatusErr; err != nil {
		r.store.UpdateStatusErr = nil
		return nil, err
	}
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	if res.Status != from {
		return nil, errs.ErrStaleStatus
	}
	prevStatus, prevUpdated := res.Status, res.UpdatedAt
	res.Status = to
	res.UpdatedAt = at
	record(r.tx, func() {
		res.Status = prevStatus
		res.UpdatedAt = prevUpdated
	})
	cp := *res
	return &cp, nil
}

// UserRepository is an in-memory persistence.UserRepository
type UserRepository struct {
	store *Store
	tx    *tx
}

// GetByID implements persistence.UserRepository
func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// SetOutstandingBalance implements persistence.UserRepository
func (r *UserRepository) SetOutstandingBalance(_ context.Context, id string, outstanding bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return errs.ErrUserNotFound
	}
	prev := u.HasOutstandingBalance
	u.HasOutstandingBalance = outstanding
	record(r.tx, func() { u.HasOutstandingBalance = prev })
	return nil
}

// FineRepository is an in-memory persistence.FineRepository
type FineRepository struct {
	store *Store
	tx    *tx
}

// Create implements persistence.FineRepository
func (r *FineRepository) Create(_ context.Context, fine *entity.Fine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[fine.UserID]; !ok {
		return errs.ErrUserNotFound
	}
	cp := *fine
	r.store.fines[cp.ID] = &cp
	id := cp.ID
	record(r.tx, func() { delete(r.store.fines, id) })
	return nil
}

// GetByID implements persistence.FineRepository
func (r *FineRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Fine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	f, ok := r.store.fines[id]
	if !ok {
		return nil, errs.ErrFineNotFound
	}
	cp := *f
	return &cp, nil
}

// ListUnpaid implements persistence.FineRepository
func (r *FineRepository) ListUnpaid(_ context.Context, userID string) ([]*entity.Fine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Fine
	for _, f := range r.store.fines {
		if !f.Paid && (userID == "" || f.UserID == userID) {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

// CountUnpaid implements persistence.FineRepository
func (r *FineRepository) CountUnpaid(ctx context.Context, userID string) (int, error) {
	list, err := r.ListUnpaid(ctx, userID)
	return len(list), err
}

// MarkPaid implements persistence.FineRepository
func (r *FineRepository) MarkPaid(_ context.Context, fine *entity.Fine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	f, ok := r.store.fines[fine.ID]
	if !ok || f.Paid {
		return errs.ErrFineNotFound
	}
	prev := *f
	f.Paid = true
	f.PaidAt = fine.PaidAt
	record(r.tx, func() { *f = prev })
	return nil
}

// AssetRepository is an in-memory persistence.AssetRepository
type AssetRepository struct {
	store *Store
}

// GetByID implements persistence.AssetRepository
func (r *AssetRepository) GetByID(_ context.Context, id uint64) (*entity.Asset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.assets[id]
	if !ok {
		return nil, errs.ErrAssetNotFound
	}
	cp := *a
	return &cp, nil
}

// List implements persistence.AssetRepository
func (r *AssetRepository) List(_ context.Context, category string) ([]*entity.Asset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Asset
	for _, a := range r.store.assets {
		if category == "" || a.Category == category {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out, nil
}

// Upsert implements persistence.AssetRepository
func (r *AssetRepository) Upsert(_ context.Context, assets []*entity.Asset) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range assets {
		cp := *a
		if existing, ok := r.store.assets[a.ID]; ok && len(cp.RequiredCourses) == 0 {
			cp.RequiredCourses = existing.RequiredCourses
		}
		r.store.assets[a.ID] = &cp
	}
	return nil
}

// LockRepository is an in-memory persistence.AdmissionLockRepository
type LockRepository struct {
	store *Store
}

// AcquireLock implements persistence.AdmissionLockRepository
func (r *LockRepository) AcquireLock(_ context.Context, key, owner string, ttl time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := r.store.now()
	if l, ok := r.store.locks[key]; ok && l.owner != owner && l.expiresAt.After(now) {
		return errs.ErrLockHeld
	}
	r.store.locks[key] = lockEntry{owner: owner, expiresAt: now.Add(ttl)}
	return nil
}

// ReleaseLock implements persistence.AdmissionLockRepository
func (r *LockRepository) ReleaseLock(_ context.Context, key, owner string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.locks[key]; ok && l.owner == owner {
		delete(r.store.locks, key)
	}
	return nil
}

// CleanupExpiredLocks implements persistence.AdmissionLockRepository
func (r *LockRepository) CleanupExpiredLocks(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := r.store.now()
	var n int64
	for k, l := range r.store.locks {
		if !l.expiresAt.After(now) {
			delete(r.store.locks, k)
			n++
		}
	}
	return n, nil
}
