package commands

//go:generate mockgen -source=profile.go -destination=../../../tests/mock/commands/profile.go -package=commandsmock

import (
	"context"
	"strings"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxProfileFieldLength = 500

type UpdateProfileRequest struct {
	Profile user.Profile
	// Address is saved only when it carries a first line.
	Address *user.Address
}

type ProfileCommands interface {
	Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (uc *profileCommandsImpl) Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error {
	profile := trimProfile(req.Profile)
	if tooLong(profile) {
		return reject(ErrInvalidProfile, "Profile fields must be at most 500 characters")
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Wrap(err, "load user for profile update")
		}

		u := toUser(snap)
		u.ChangeProfile(profile, uc.clock.Now())
		if err := tx.Users().UpdateProfile(ctx, tx.DB(), u); err != nil {
			return err
		}

		if req.Address == nil || !req.Address.HasLine1() {
			return nil
		}
		addr := req.Address.Normalize(profile, "", "")
		return tx.Users().UpsertDefaultAddress(ctx, tx.DB(), userID, addr)
	})
}

func trimProfile(p user.Profile) user.Profile {
	return user.Profile{
		Name:           strings.TrimSpace(p.Name),
		Nickname:       strings.TrimSpace(p.Nickname),
		Phone:          strings.TrimSpace(p.Phone),
		Location:       strings.TrimSpace(p.Location),
		Preferences:    strings.TrimSpace(p.Preferences),
		FavoriteStyles: strings.TrimSpace(p.FavoriteStyles),
	}
}

func tooLong(p user.Profile) bool {
	for _, v := range []string{p.Name, p.Nickname, p.Phone, p.Location, p.Preferences, p.FavoriteStyles} {
		if len(v) > maxProfileFieldLength {
			return true
		}
	}
	return false
}

func toUser(s *shared.UserSnapshot) *user.User {
	email, _ := user.NewEmail(s.Email)
	role, _ := user.NewRole(s.Role)
	return user.ReconstructUser(s.ID, email, s.PasswordHash, role, user.Profile{
		Name:           s.Name,
		Nickname:       s.Nickname,
		Phone:          s.Phone,
		Location:       s.Location,
		Preferences:    s.Preferences,
		FavoriteStyles: s.FavoriteStyles,
	}, s.LastLogin, s.IsActive, s.CreatedAt, s.UpdatedAt)
}
