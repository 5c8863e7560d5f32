package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, created_at`

const profileColumns = `id, user_id, phone_number, gender, date_of_birth, address, city, country,
	expo_push_token, is_service_provider, is_approved_provider, support_resolved,
	latitude, longitude, created_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithProfile inserts the user and then its profile in one database transaction.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user domain.User, profile domain.Profile) (domain.User, domain.Profile, error) {
	logger.Info("user repository create with profile", logger.Fields{
		"username": user.Username,
	})

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("user repository begin tx failed", err, nil)
		return domain.User{}, domain.Profile{}, fmt.Errorf("begin create user transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const userQuery = `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

	var createdUser domain.User
	if err = tx.QueryRowxContext(ctx, userQuery, user.Username, user.Email, user.PasswordHash).StructScan(&createdUser); err != nil {
		logger.Error("user repository create user failed", err, logger.Fields{
			"username": user.Username,
		})
		if isUniqueViolation(err) {
			return domain.User{}, domain.Profile{}, fmt.Errorf("create user %q: %w", user.Username, commons.ErrDuplicate)
		}
		return domain.User{}, domain.Profile{}, fmt.Errorf("create user: %w", err)
	}

	const profileQuery = `
INSERT INTO profiles (user_id, phone_number, gender)
VALUES ($1, $2, $3)
RETURNING ` + profileColumns

	var createdProfile domain.Profile
	if err = tx.QueryRowxContext(ctx, profileQuery, createdUser.ID, profile.PhoneNumber, profile.Gender).StructScan(&createdProfile); err != nil {
		logger.Error("user repository create profile failed", err, logger.Fields{
			"userId": createdUser.ID,
		})
		return domain.User{}, domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("user repository commit tx failed", err, nil)
		return domain.User{}, domain.Profile{}, fmt.Errorf("commit create user transaction: %w", err)
	}

	logger.Info("user repository create with profile success", logger.Fields{
		"userId":    createdUser.ID,
		"profileId": createdProfile.ID,
	})

	return createdUser, createdProfile, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, commons.ErrRecordNotFound
		}
		logger.Error("user repository get by username failed", err, logger.Fields{
			"username": username,
		})
		return domain.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("profile repository record not found", logger.Fields{
				"userId": userID,
			})
			return domain.Profile{}, commons.ErrRecordNotFound
		}
		logger.Error("profile repository get by user id failed", err, logger.Fields{
			"userId": userID,
		})
		return domain.Profile{}, fmt.Errorf("get profile by user id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	logger.Info("profile repository update", logger.Fields{
		"userId": profile.UserID,
	})

	const query = `
UPDATE profiles
SET phone_number = $2,
	gender = $3,
	date_of_birth = $4,
	address = $5,
	city = $6,
	country = $7,
	is_service_provider = $8,
	latitude = $9,
	longitude = $10
WHERE user_id = $1
RETURNING ` + profileColumns

	var updated domain.Profile
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		profile.UserID,
		profile.PhoneNumber,
		profile.Gender,
		profile.DateOfBirth,
		profile.Address,
		profile.City,
		profile.Country,
		profile.IsServiceProvider,
		profile.Latitude,
		profile.Longitude,
	).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, commons.ErrRecordNotFound
		}
		logger.Error("profile repository update failed", err, logger.Fields{
			"userId": profile.UserID,
		})
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return updated, nil
}

func (r *ProfileRepository) SavePushToken(ctx context.Context, userID int64, token string) error {
	const query = `UPDATE profiles SET expo_push_token = $2 WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, token)
	if err != nil {
		logger.Error("profile repository save push token failed", err, logger.Fields{
			"userId": userID,
		})
		return fmt.Errorf("save push token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save push token rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

// UpdateProviderStatus sets the provider flags that are non-nil and leaves the
// others as stored.
func (r *ProfileRepository) UpdateProviderStatus(ctx context.Context, userID int64, isServiceProvider, isApprovedProvider *bool) (domain.Profile, error) {
	logger.Info("profile repository update provider status", logger.Fields{
		"userId": userID,
	})

	const query = `
UPDATE profiles
SET is_service_provider = COALESCE($2, is_service_provider),
	is_approved_provider = COALESCE($3, is_approved_provider)
WHERE user_id = $1
RETURNING ` + profileColumns

	var updated domain.Profile
	if err := r.db.QueryRowxContext(ctx, query, userID, isServiceProvider, isApprovedProvider).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, commons.ErrRecordNotFound
		}
		logger.Error("profile repository update provider status failed", err, logger.Fields{
			"userId": userID,
		})
		return domain.Profile{}, fmt.Errorf("update provider status: %w", err)
	}

	return updated, nil
}
