package commands

import (
	"context"

	"parking-app/internal/domain/user"
	reqdto "parking-app/internal/handler/dto/request"
	"parking-app/internal/infra"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/pkg/patch"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=profile.go -destination=../../mock/commandsmock/profile.go -package=commandsmock

type ProfileCommands interface {
	// UpdateProfile applies the fields present in req; absent fields keep their value.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	stats StatsInvalidator
}

func NewProfileCommands(uow shared.UnitOfWork, stats StatsInvalidator) ProfileCommands {
	return &profileCommandsImpl{uow: uow, stats: stats}
}

func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	var renamed bool
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		current := account.Profile()
		username, err := user.NewUsername(patch.Coalesce(req.Username, account.Username().Value()))
		if err != nil {
			return errs.Mark(err, ErrInvalidProfile)
		}
		profile, err := user.NewProfile(
			patch.Text(req.Email, current.Email()),
			patch.Text(req.Mobile, current.Mobile()),
			patch.Text(req.VehicleRegNo, current.VehicleRegNo()),
			patch.Text(req.Address, current.Address()),
			patch.Text(req.Pincode, current.Pincode()),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidProfile)
		}

		renamed = username != account.Username()
		account.Rename(username)
		account.UpdateProfile(profile)
		return tx.Users().Update(ctx, tx.DB(), account)
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrInvalidProfile):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrUsernameTaken
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	// recent bookings on the admin dashboard show usernames
	if renamed {
		p.stats.InvalidateStats(ctx, uuid.Nil)
	}
	return nil
}
