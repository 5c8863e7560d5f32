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

const serviceColumns = `id, name, description, price, duration_minutes, created_at`

type ServiceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	const query = `
INSERT INTO services (name, description, price, duration_minutes)
VALUES ($1, $2, $3, $4)
RETURNING ` + serviceColumns

	var created domain.Service
	if err := r.db.QueryRowxContext(ctx, query, service.Name, service.Description, service.Price, service.DurationMinutes).StructScan(&created); err != nil {
		logger.Error("service repository create failed", err, logger.Fields{
			"name": service.Name,
		})
		return domain.Service{}, fmt.Errorf("create service: %w", err)
	}

	return created, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var service domain.Service
	if err := r.db.GetContext(ctx, &service, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Service{}, commons.ErrRecordNotFound
		}
		return domain.Service{}, fmt.Errorf("get service by id: %w", err)
	}

	return service, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services ORDER BY name, id`

	services := []domain.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		logger.Error("service repository list failed", err, nil)
		return nil, fmt.Errorf("list services: %w", err)
	}

	return services, nil
}
