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

const supportMessageColumns = `id, user_id, message, is_from_admin, response_to, created_at`

type SupportMessageRepository struct {
	db *sqlx.DB
}

func NewSupportMessageRepository(db *sqlx.DB) *SupportMessageRepository {
	return &SupportMessageRepository{db: db}
}

func (r *SupportMessageRepository) Create(ctx context.Context, message domain.SupportMessage) (domain.SupportMessage, error) {
	logger.Info("support message repository create", logger.Fields{
		"userId":      message.UserID,
		"isFromAdmin": message.IsFromAdmin,
		"responseTo":  message.ResponseTo,
	})

	const query = `
INSERT INTO support_messages (user_id, message, is_from_admin, response_to)
VALUES ($1, $2, $3, $4)
RETURNING ` + supportMessageColumns

	var created domain.SupportMessage
	if err := r.db.QueryRowxContext(ctx, query, message.UserID, message.Message, message.IsFromAdmin, message.ResponseTo).StructScan(&created); err != nil {
		if isForeignKeyViolation(err) {
			return domain.SupportMessage{}, fmt.Errorf("create support message: %w", commons.ErrRecordNotFound)
		}
		logger.Error("support message repository create failed", err, logger.Fields{
			"userId": message.UserID,
		})
		return domain.SupportMessage{}, fmt.Errorf("create support message: %w", err)
	}

	return created, nil
}

func (r *SupportMessageRepository) GetByID(ctx context.Context, id int64) (domain.SupportMessage, error) {
	var message domain.SupportMessage
	if err := r.db.GetContext(ctx, &message, `SELECT `+supportMessageColumns+` FROM support_messages WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SupportMessage{}, commons.ErrRecordNotFound
		}
		return domain.SupportMessage{}, fmt.Errorf("get support message by id: %w", err)
	}

	return message, nil
}

func (r *SupportMessageRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.SupportMessage, error) {
	const query = `
SELECT ` + supportMessageColumns + `
FROM support_messages
WHERE user_id = $1
ORDER BY created_at, id`

	messages := []domain.SupportMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, userID); err != nil {
		logger.Error("support message repository list failed", err, logger.Fields{
			"userId": userID,
		})
		return nil, fmt.Errorf("list support messages: %w", err)
	}

	return messages, nil
}
