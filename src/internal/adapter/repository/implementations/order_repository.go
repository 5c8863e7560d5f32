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

const orderSelect = `
SELECT o.id, o.user_id, o.service_id, s.name AS service_name, o.appointment_time, o.status, o.created_at
FROM orders o
JOIN services s ON s.id = o.service_id`

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	logger.Info("order repository create", logger.Fields{
		"userId":    order.UserID,
		"serviceId": order.ServiceID,
	})

	const query = `
INSERT INTO orders (user_id, service_id, appointment_time, status)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, order.UserID, order.ServiceID, order.AppointmentTime, order.Status).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Order{}, fmt.Errorf("create order service: %w", commons.ErrRecordNotFound)
		}
		logger.Error("order repository create failed", err, logger.Fields{
			"userId":    order.UserID,
			"serviceId": order.ServiceID,
		})
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	if err := r.db.GetContext(ctx, &order, orderSelect+` WHERE o.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, commons.ErrRecordNotFound
		}
		return domain.Order{}, fmt.Errorf("get order by id: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := r.db.SelectContext(ctx, &orders, orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC`, userID); err != nil {
		logger.Error("order repository list failed", err, logger.Fields{
			"userId": userID,
		})
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	logger.Info("order repository update status", logger.Fields{
		"orderId": id,
		"status":  status,
	})

	result, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		logger.Error("order repository update status failed", err, logger.Fields{
			"orderId": id,
		})
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.Order{}, commons.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	const query = `
INSERT INTO feedback (order_id, rating, comment)
VALUES ($1, $2, $3)
RETURNING id, order_id, rating, comment, created_at`

	var created domain.Feedback
	if err := r.db.QueryRowxContext(ctx, query, feedback.OrderID, feedback.Rating, feedback.Comment).StructScan(&created); err != nil {
		if isUniqueViolation(err) {
			return domain.Feedback{}, fmt.Errorf("create feedback for order %d: %w", feedback.OrderID, commons.ErrDuplicate)
		}
		logger.Error("feedback repository create failed", err, logger.Fields{
			"orderId": feedback.OrderID,
		})
		return domain.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}

	return created, nil
}
