package repo_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type UserRepository interface {
	CreateWithProfile(ctx context.Context, user domain.User, profile domain.Profile) (domain.User, domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (domain.Profile, error)
	Update(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	SavePushToken(ctx context.Context, userID int64, token string) error
	UpdateProviderStatus(ctx context.Context, userID int64, isServiceProvider, isApprovedProvider *bool) (domain.Profile, error)
}
