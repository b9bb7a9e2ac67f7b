package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/repository"
)

type PostgresSuite struct {
	suite.Suite
	db  *database.TestDBManager
	ctx context.Context
}

func TestPostgresSuite(t *testing.T) {
	database.RequireTestDB(t)
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.db = database.NewTestDBManager(s.T(), logger.NewNoopLogger())
	s.db.Connect(s.T())
	s.db.SetupTestDB(s.T())
}

func (s *PostgresSuite) TearDownSuite() {
	s.db.Close(s.T())
}

func (s *PostgresSuite) SetupTest() {
	s.db.TruncateAllTables(s.T())
	s.db.CreateTestUser(s.T(), "student-1", "FILM101")
	s.db.CreateTestUser(s.T(), "student-2")
	s.db.CreateTestAsset(s.T(), 1, "Camera")
	s.db.CreateTestAsset(s.T(), 2, "Camera")
}

func (s *PostgresSuite) reservations() *repository.ReservationRepository {
	return repository.NewReservationRepository(s.db.Manager.DB(), s.db.Logger)
}

func (s *PostgresSuite) newReservation(assetID uint64, userID string, start time.Time, hours int) *entity.Reservation {
	r, err := entity.NewReservation(assetID, userID, "Camera", start, start.Add(time.Duration(hours)*time.Hour),
		entity.StatusConfirmed, s.db.TimeProvider)
	s.Require().NoError(err)
	return r
}

func monday() time.Time {
	return time.Date(2030, 3, 4, 16, 0, 0, 0, time.UTC)
}

func (s *PostgresSuite) TestMigrateAllIsIdempotent() {
	migrator := migration.NewMigrationManager(s.db.Manager.DB(), s.db.Logger, s.db.TimeProvider)
	s.Require().NoError(migrator.MigrateAll(s.ctx))

	version, err := migrator.GetCurrentVersion(s.ctx)
	s.Require().NoError(err)
	s.Equal(migration.CurrentSchemaVersion, version)
}

func (s *PostgresSuite) TestReservationCreateAndQuery() {
	repo := s.reservations()
	first := s.newReservation(1, "student-1", monday(), 3)
	second := s.newReservation(2, "student-1", monday().Add(24*time.Hour), 3)
	s.Require().NoError(repo.Create(s.ctx, first))
	s.Require().NoError(repo.Create(s.ctx, second))

	loaded, err := repo.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(first.AssetID, loaded.AssetID)
	s.True(first.StartTime.Equal(loaded.StartTime))
	s.Equal(entity.StatusConfirmed, loaded.Status)

	all, err := repo.Query(s.ctx, persistence.ReservationFilter{UserID: "student-1"})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(first.ID, all[0].ID)

	overlapping, err := repo.Query(s.ctx, persistence.ReservationFilter{
		OverlapStart: monday().Add(3 * time.Hour),
		OverlapEnd:   monday().Add(5 * time.Hour),
	})
	s.Require().NoError(err)
	s.Require().Len(overlapping, 1, "touching windows count as overlapping")
	s.Equal(first.ID, overlapping[0].ID)

	count, err := repo.Count(s.ctx, persistence.ReservationFilter{
		Category:    "Camera",
		StatusIn:    entity.ActiveStatuses,
		StartFrom:   monday(),
		StartBefore: monday().Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PostgresSuite) TestReservationGetByIDNotFound() {
	_, err := s.reservations().GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *PostgresSuite) TestOverlapConstraintRejectsDoubleBooking() {
	repo := s.reservations()
	s.Require().NoError(repo.Create(s.ctx, s.newReservation(1, "student-1", monday(), 3)))

	// ends exactly where the first one starts
	touching := s.newReservation(1, "student-2", monday().Add(-3*time.Hour), 3)
	err := repo.Create(s.ctx, touching)
	s.Require().Error(err)
	s.True(errs.IsConflictError(err))
	s.Equal(errs.RuleAssetUnavailable, errs.RuleOf(err))

	// a different asset is unaffected
	s.NoError(repo.Create(s.ctx, s.newReservation(2, "student-2", monday(), 3)))
}

func (s *PostgresSuite) TestCancelledReservationFreesAsset() {
	repo := s.reservations()
	first := s.newReservation(1, "student-1", monday(), 3)
	s.Require().NoError(repo.Create(s.ctx, first))

	_, err := repo.UpdateStatus(s.ctx, first.ID, entity.StatusConfirmed, entity.StatusCancelled, s.db.TimeProvider.Now())
	s.Require().NoError(err)

	s.NoError(repo.Create(s.ctx, s.newReservation(1, "student-2", monday(), 3)))
}

func (s *PostgresSuite) TestUpdateStatusStale() {
	repo := s.reservations()
	r := s.newReservation(1, "student-1", monday(), 3)
	s.Require().NoError(repo.Create(s.ctx, r))

	updated, err := repo.UpdateStatus(s.ctx, r.ID, entity.StatusConfirmed, entity.StatusCheckedOut, s.db.TimeProvider.Now())
	s.Require().NoError(err)
	s.Equal(entity.StatusCheckedOut, updated.Status)

	_, err = repo.UpdateStatus(s.ctx, r.ID, entity.StatusConfirmed, entity.StatusCancelled, s.db.TimeProvider.Now())
	s.ErrorIs(err, errs.ErrStaleStatus)

	_, err = repo.UpdateStatus(s.ctx, uuid.New(), entity.StatusConfirmed, entity.StatusCancelled, s.db.TimeProvider.Now())
	s.ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *PostgresSuite) TestAdmissionLocks() {
	locks := repository.NewAdmissionLockRepository(s.db.Manager.DB(), s.db.TimeProvider, s.db.Logger)

	s.Require().NoError(locks.AcquireLock(s.ctx, "asset:1", "owner-a", time.Minute))
	s.ErrorIs(locks.AcquireLock(s.ctx, "asset:1", "owner-b", time.Minute), errs.ErrLockHeld)
	s.NoError(locks.AcquireLock(s.ctx, "asset:1", "owner-a", time.Minute), "owner may refresh its lock")

	// releasing with the wrong owner is a no-op
	s.Require().NoError(locks.ReleaseLock(s.ctx, "asset:1", "owner-b"))
	s.ErrorIs(locks.AcquireLock(s.ctx, "asset:1", "owner-b", time.Minute), errs.ErrLockHeld)

	s.Require().NoError(locks.ReleaseLock(s.ctx, "asset:1", "owner-a"))
	s.NoError(locks.AcquireLock(s.ctx, "asset:1", "owner-b", time.Minute))
}

func (s *PostgresSuite) TestAdmissionLockExpiry() {
	locks := repository.NewAdmissionLockRepository(s.db.Manager.DB(), s.db.TimeProvider, s.db.Logger)

	s.Require().NoError(locks.AcquireLock(s.ctx, "user:student-1", "owner-a", -time.Second))
	s.NoError(locks.AcquireLock(s.ctx, "user:student-1", "owner-b", -time.Second), "expired lock is taken over")
	s.Require().NoError(locks.AcquireLock(s.ctx, "asset:2", "owner-c", -time.Second))

	removed, err := locks.CleanupExpiredLocks(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), removed)
}

func (s *PostgresSuite) TestUnitOfWorkRollback() {
	uow := s.db.Manager.CreateUnitOfWork()

	txCtx, err := uow.Begin(s.ctx)
	s.Require().NoError(err)
	r := s.newReservation(1, "student-1", monday(), 3)
	s.Require().NoError(uow.GetReservationRepository(txCtx).Create(txCtx, r))
	s.Require().NoError(uow.Rollback(txCtx))

	_, err = uow.GetReservationRepository(s.ctx).GetByID(s.ctx, r.ID)
	s.ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *PostgresSuite) TestUnitOfWorkCommit() {
	uow := s.db.Manager.CreateUnitOfWork()

	txCtx, err := uow.Begin(s.ctx)
	s.Require().NoError(err)
	r := s.newReservation(1, "student-1", monday(), 3)
	s.Require().NoError(uow.GetReservationRepository(txCtx).Create(txCtx, r))
	s.Require().NoError(uow.GetUserRepository(txCtx).SetOutstandingBalance(txCtx, "student-2", true))
	s.Require().NoError(uow.Commit(txCtx))
	s.NoError(uow.Rollback(txCtx), "rollback after commit is tolerated")

	_, err = uow.GetReservationRepository(s.ctx).GetByID(s.ctx, r.ID)
	s.NoError(err)
	user, err := uow.GetUserRepository(s.ctx).GetByID(s.ctx, "student-2")
	s.Require().NoError(err)
	s.True(user.HasOutstandingBalance)
}

func (s *PostgresSuite) TestUserRepository() {
	users := repository.NewUserRepository(s.db.Manager.DB(), s.db.TimeProvider, s.db.Logger)

	user, err := users.GetByID(s.ctx, "student-1")
	s.Require().NoError(err)
	s.Equal([]string{"FILM101"}, user.EnrolledCourses)
	s.Equal(entity.RoleStudent, user.Role)

	_, err = users.GetByID(s.ctx, "nobody")
	s.ErrorIs(err, errs.ErrUserNotFound)
	s.ErrorIs(users.SetOutstandingBalance(s.ctx, "nobody", true), errs.ErrUserNotFound)
}

func (s *PostgresSuite) TestAssetUpsertKeepsCoursesWhenOmitted() {
	assets := repository.NewAssetRepository(s.db.Manager.DB(), s.db.TimeProvider, s.db.Logger)
	now := s.db.TimeProvider.Now()

	s.Require().NoError(assets.Upsert(s.ctx, []*entity.Asset{{
		ID: 1, Tag: "TST-0001", Name: "Restricted Camera", Category: "Camera",
		RequiredCourses: []string{"FILM101"}, CreatedAt: now, UpdatedAt: now,
	}}))
	s.Require().NoError(assets.Upsert(s.ctx, []*entity.Asset{{
		ID: 1, Tag: "TST-0001", Name: "Renamed Camera", Category: "Camera", CreatedAt: now, UpdatedAt: now,
	}}))

	asset, err := assets.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Renamed Camera", asset.Name)
	s.Equal([]string{"FILM101"}, asset.RequiredCourses)

	cameras, err := assets.List(s.ctx, "Camera")
	s.Require().NoError(err)
	s.Len(cameras, 2)

	_, err = assets.GetByID(s.ctx, 99)
	s.ErrorIs(err, errs.ErrAssetNotFound)
}

func (s *PostgresSuite) TestFineRepository() {
	fines := repository.NewFineRepository(s.db.Manager.DB(), s.db.Logger)

	fine, err := entity.NewFine("student-1", nil, "late return", "12.50", s.db.TimeProvider)
	s.Require().NoError(err)
	s.Require().NoError(fines.Create(s.ctx, fine))

	count, err := fines.CountUnpaid(s.ctx, "student-1")
	s.Require().NoError(err)
	s.Equal(1, count)

	s.Require().NoError(fine.Settle(s.db.TimeProvider.Now()))
	s.Require().NoError(fines.MarkPaid(s.ctx, fine))
	s.ErrorIs(fines.MarkPaid(s.ctx, fine), errs.ErrFineNotFound, "fine can only be settled once")

	unpaid, err := fines.ListUnpaid(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(unpaid)
}

func TestRequireTestDBSkips(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "")
	ran := false
	t.Run("skipped", func(t *testing.T) {
		database.RequireTestDB(t)
		ran = true
	})
	assert.False(t, ran)
}
