package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"golang.org/x/crypto/bcrypt"
)

var _ service_interfaces.UserService = (*UserService)(nil)

const dateLayout = "2006-01-02"

type UserService struct {
	userRepo    repo_interfaces.UserRepository
	profileRepo repo_interfaces.ProfileRepository
	hashCost    int
}

func NewUserService(userRepo repo_interfaces.UserRepository, profileRepo repo_interfaces.ProfileRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		hashCost:    bcrypt.DefaultCost,
	}
}

// Register creates the user and its profile in one transaction.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error) {
	logger.Info("user service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service register validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterResponse](commons.MessageValidationFailed, err.Error()), err
	}

	hashed, err := hashPassword(req.Password, s.hashCost)
	if err != nil {
		logger.Error("user service register hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterResponse]("failed to register user", "failed to hash password"), err
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	gender := domain.Gender(strings.TrimSpace(req.Gender))

	user := domain.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
	}
	profile := domain.Profile{
		PhoneNumber: &phone,
		Gender:      &gender,
	}

	created, _, err := s.userRepo.CreateWithProfile(ctx, user, profile)
	if err != nil {
		logger.Error("user service register repository failed", err, logger.Fields{
			"username": user.Username,
		})
		if errors.Is(err, commons.ErrDuplicate) {
			return commons.AlreadyExists[models.RegisterResponse]("Username", "a user with this username already exists"), err
		}
		return commons.ErrorResponse[models.RegisterResponse]("failed to register user", "Unable to register user right now"), err
	}

	logger.Info("user service register success", logger.Fields{
		"userId":   created.ID,
		"username": created.Username,
	})

	return commons.SuccessResponse("user registered successfully", models.RegisterResponse{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
	}), nil
}

// Authenticate resolves a username and password to the stored user. Unknown
// users and wrong passwords both return commons.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username string, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, commons.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return domain.User{}, commons.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("authenticate user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, commons.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("authenticate user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (commons.Response[models.ProfileResponse], error) {
	logger.Info("user service get profile request", logger.Fields{
		"userId": userID,
	})

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("user service get profile failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ProfileResponse]("Profile"), err
		}
		return commons.ErrorResponse[models.ProfileResponse]("failed to get profile", "Unable to fetch profile right now"), err
	}

	return commons.SuccessResponse("profile fetched successfully", toProfileResponse(profile)), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (commons.Response[models.ProfileResponse], error) {
	logger.Info("user service update profile request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service update profile validation failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.ProfileResponse](commons.MessageValidationFailed, err.Error()), err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("user service update profile lookup failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ProfileResponse]("Profile"), err
		}
		return commons.ErrorResponse[models.ProfileResponse]("failed to update profile", "Unable to update profile right now"), err
	}

	applyProfileUpdate(&profile, req)

	updated, err := s.profileRepo.Update(ctx, profile)
	if err != nil {
		logger.Error("user service update profile repository failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ProfileResponse]("Profile"), err
		}
		return commons.ErrorResponse[models.ProfileResponse]("failed to update profile", "Unable to update profile right now"), err
	}

	logger.Info("user service update profile success", logger.Fields{
		"userId": userID,
	})

	return commons.SuccessResponse("profile updated successfully", toProfileResponse(updated)), nil
}

func (s *UserService) SavePushToken(ctx context.Context, userID int64, req models.SavePushTokenRequest) (commons.Response[models.SavePushTokenResponse], error) {
	logger.Info("user service save push token request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SavePushTokenResponse](commons.MessageValidationFailed, err.Error()), err
	}

	if err := s.profileRepo.SavePushToken(ctx, userID, strings.TrimSpace(req.ExpoPushToken)); err != nil {
		logger.Error("user service save push token failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.SavePushTokenResponse]("Profile"), err
		}
		return commons.ErrorResponse[models.SavePushTokenResponse]("failed to save push token", "Unable to save push token right now"), err
	}

	return commons.SuccessResponse("push token saved successfully", models.SavePushTokenResponse{Saved: true}), nil
}

// UpdateProviderStatus is the admin switch for provider flags. Approving a
// profile also marks it as a service provider, and removing the service
// provider flag withdraws approval.
func (s *UserService) UpdateProviderStatus(ctx context.Context, userID int64, req models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error) {
	logger.Info("user service update provider status request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ProfileResponse](commons.MessageValidationFailed, err.Error()), err
	}

	isServiceProvider, isApprovedProvider := req.IsServiceProvider, req.IsApprovedProvider
	if isApprovedProvider != nil && *isApprovedProvider && isServiceProvider == nil {
		isServiceProvider = boolPtr(true)
	}
	if isServiceProvider != nil && !*isServiceProvider {
		isApprovedProvider = boolPtr(false)
	}

	updated, err := s.profileRepo.UpdateProviderStatus(ctx, userID, isServiceProvider, isApprovedProvider)
	if err != nil {
		logger.Error("user service update provider status failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ProfileResponse]("Profile"), err
		}
		return commons.ErrorResponse[models.ProfileResponse]("failed to update provider status", "Unable to update provider status right now"), err
	}

	logger.Info("user service update provider status success", logger.Fields{
		"userId":             userID,
		"isServiceProvider":  updated.IsServiceProvider,
		"isApprovedProvider": updated.IsApprovedProvider,
	})

	return commons.SuccessResponse("provider status updated successfully", toProfileResponse(updated)), nil
}

func boolPtr(v bool) *bool { return &v }

func applyProfileUpdate(profile *domain.Profile, req models.UpdateProfileRequest) {
	if req.PhoneNumber != nil {
		profile.PhoneNumber = trimmedOrNil(*req.PhoneNumber)
	}
	if req.Gender != nil {
		gender := domain.Gender(strings.TrimSpace(*req.Gender))
		profile.Gender = &gender
	}
	if req.DateOfBirth != nil {
		if dob, err := time.Parse(dateLayout, strings.TrimSpace(*req.DateOfBirth)); err == nil {
			profile.DateOfBirth = &dob
		}
	}
	if req.Address != nil {
		profile.Address = trimmedOrNil(*req.Address)
	}
	if req.City != nil {
		profile.City = trimmedOrNil(*req.City)
	}
	if req.Country != nil {
		profile.Country = trimmedOrNil(*req.Country)
	}
	if req.IsServiceProvider != nil {
		profile.IsServiceProvider = *req.IsServiceProvider
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
}

func toProfileResponse(profile domain.Profile) models.ProfileResponse {
	response := models.ProfileResponse{
		UserID:             profile.UserID,
		PhoneNumber:        profile.PhoneNumber,
		Address:            profile.Address,
		City:               profile.City,
		Country:            profile.Country,
		HasPushToken:       profile.ExpoPushToken != nil && *profile.ExpoPushToken != "",
		IsServiceProvider:  profile.IsServiceProvider,
		IsApprovedProvider: profile.IsApprovedProvider,
		SupportResolved:    profile.SupportResolved,
		Latitude:           profile.Latitude,
		Longitude:          profile.Longitude,
		CreatedAt:          profile.CreatedAt.Format(time.RFC3339),
	}
	if profile.Gender != nil {
		gender := string(*profile.Gender)
		response.Gender = &gender
	}
	if profile.DateOfBirth != nil {
		dob := profile.DateOfBirth.Format(dateLayout)
		response.DateOfBirth = &dob
	}
	return response
}

func trimmedOrNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
