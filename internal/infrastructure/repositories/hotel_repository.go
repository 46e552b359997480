package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/core/domain/hotel"
	"github.com/stayops/hotel-management-api/internal/core/ports"
	"github.com/stayops/hotel-management-api/internal/infrastructure/db"
)

// HotelRepository implements ports.ResourceRepository for hotels.
type HotelRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewHotelRepository(database *db.Database, logger *logrus.Logger) ports.ResourceRepository[hotel.Hotel] {
	return &HotelRepository{db: database, logger: logger}
}

func (r *HotelRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]hotel.Hotel, error) {
	query := `
		SELECT id, owner_id, name, location, created_at, updated_at
		FROM hotels
		WHERE owner_id = $1
		ORDER BY id`

	var hotels []hotel.Hotel
	if err := r.db.DB.SelectContext(ctx, &hotels, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (hotel.Hotel, error) {
	query := `
		SELECT id, owner_id, name, location, created_at, updated_at
		FROM hotels
		WHERE id = $1`

	var h hotel.Hotel
	if err := r.db.DB.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hotel.Hotel{}, ports.ErrNotFound
		}
		return hotel.Hotel{}, fmt.Errorf("failed to get hotel: %w", err)
	}
	return h, nil
}

func (r *HotelRepository) Create(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error) {
	query := `
		INSERT INTO hotels (owner_id, name, location)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, location, created_at, updated_at`

	var created hotel.Hotel
	if err := r.db.DB.GetContext(ctx, &created, query, h.OwnerID, h.Name, h.Location); err != nil {
		return hotel.Hotel{}, fmt.Errorf("failed to create hotel: %w", err)
	}
	return created, nil
}

func (r *HotelRepository) Update(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error) {
	query := `
		UPDATE hotels
		SET name = $2, location = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, name, location, created_at, updated_at`

	var updated hotel.Hotel
	if err := r.db.DB.GetContext(ctx, &updated, query, h.ID, h.Name, h.Location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hotel.Hotel{}, ports.ErrNotFound
		}
		return hotel.Hotel{}, fmt.Errorf("failed to update hotel: %w", err)
	}
	return updated, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
