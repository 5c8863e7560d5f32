package implementations

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepositoryCreateInsertsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	appointment := time.Now().Add(48 * time.Hour).UTC()

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(int64(4), int64(9), appointment, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectQuery(`SELECT (.+) FROM orders o\s+JOIN services s ON s.id = o.service_id WHERE o.id = \$1`).
		WithArgs(int64(21)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "service_id", "service_name", "appointment_time", "status", "created_at"}).
			AddRow(21, 4, 9, "Haircut", appointment, "pending", time.Now()))

	order, err := repo.Create(context.Background(), domain.Order{
		UserID:          4,
		ServiceID:       9,
		AppointmentTime: appointment,
		Status:          domain.OrderStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), order.ID)
	assert.Equal(t, "Haircut", order.ServiceName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`UPDATE orders SET status`).
		WithArgs(int64(404), "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(context.Background(), 404, domain.OrderStatusConfirmed)
	assert.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepositoryCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectQuery(`INSERT INTO feedback`).
		WithArgs(int64(21), 5, "great").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.Feedback{OrderID: 21, Rating: 5, Comment: "great"})
	assert.ErrorIs(t, err, commons.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
