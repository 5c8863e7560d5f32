package service_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error)
	Authenticate(ctx context.Context, username string, password string) (domain.User, error)
	GetProfile(ctx context.Context, userID int64) (commons.Response[models.ProfileResponse], error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (commons.Response[models.ProfileResponse], error)
	SavePushToken(ctx context.Context, userID int64, req models.SavePushTokenRequest) (commons.Response[models.SavePushTokenResponse], error)
	UpdateProviderStatus(ctx context.Context, userID int64, req models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error)
}
