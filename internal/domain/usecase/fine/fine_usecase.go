package fine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
)

// FineUseCase issues and settles fines and keeps the user's outstanding-balance flag in step
type FineUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.FineUseCase = (*FineUseCase)(nil)

// NewFineUseCase creates a FineUseCase
func NewFineUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *FineUseCase {
	return &FineUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// IssueFine creates an unpaid fine and flags the user's outstanding balance
func (u *FineUseCase) IssueFine(ctx context.Context, req usecase.IssueFineRequest) (*entity.Fine, error) {
	fine, err := entity.NewFine(req.UserID, req.ReservationID, req.Reason, req.Amount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	err = u.inTx(ctx, func(txCtx context.Context) error {
		if _, err := u.uow.GetUserRepository(txCtx).GetByID(txCtx, req.UserID); err != nil {
			return notFound(err, "user", req.UserID)
		}
		if req.ReservationID != nil {
			reservation, err := u.uow.GetReservationRepository(txCtx).GetByID(txCtx, *req.ReservationID)
			if err != nil {
				return notFound(err, "reservation", req.ReservationID.String())
			}
			if reservation.UserID != req.UserID {
				return errs.NewValidationError("reservationId", "reservation belongs to another user")
			}
		}
		if err := u.uow.GetFineRepository(txCtx).Create(txCtx, fine); err != nil {
			return err
		}
		return u.uow.GetUserRepository(txCtx).SetOutstandingBalance(txCtx, req.UserID, true)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Fine issued", map[string]any{
		"fine_id": fine.ID.String(),
		"user_id": fine.UserID,
		"amount":  fine.Amount(),
	})
	return fine, nil
}

// ListOutstanding returns unpaid fines, for every user when userID is empty
func (u *FineUseCase) ListOutstanding(ctx context.Context, userID string) (*usecase.OutstandingFines, error) {
	fines, err := u.uow.GetFineRepository(ctx).ListUnpaid(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := &usecase.OutstandingFines{Fines: fines}
	for _, f := range fines {
		result.TotalCents += f.AmountCents
	}
	return result, nil
}

// PayFine settles a fine and clears the outstanding flag once nothing is owed
func (u *FineUseCase) PayFine(ctx context.Context, id uuid.UUID) (*entity.Fine, error) {
	var fine *entity.Fine
	err := u.inTx(ctx, func(txCtx context.Context) error {
		fines := u.uow.GetFineRepository(txCtx)

		var err error
		fine, err = fines.GetByID(txCtx, id)
		if err != nil {
			return notFound(err, "fine", id.String())
		}
		if err := fine.Settle(u.timeProvider.Now()); err != nil {
			return err
		}
		if err := fines.MarkPaid(txCtx, fine); err != nil {
			return err
		}

		remaining, err := fines.CountUnpaid(txCtx, fine.UserID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return u.uow.GetUserRepository(txCtx).SetOutstandingBalance(txCtx, fine.UserID, false)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Fine paid", map[string]any{
		"fine_id": fine.ID.String(),
		"user_id": fine.UserID,
	})
	return fine, nil
}

func (u *FineUseCase) inTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back fine transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}
	return u.uow.Commit(txCtx)
}

func notFound(err error, resource, id string) error {
	if errs.IsNotFoundError(err) {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return err
		}
		return errs.NewNotFoundError(resource, id, err)
	}
	return err
}
