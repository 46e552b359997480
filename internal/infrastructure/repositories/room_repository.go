package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/core/domain/room"
	"github.com/stayops/hotel-management-api/internal/core/ports"
	"github.com/stayops/hotel-management-api/internal/infrastructure/db"
)

// RoomRepository implements ports.ResourceRepository for rooms.
type RoomRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewRoomRepository(database *db.Database, logger *logrus.Logger) ports.ResourceRepository[room.Room] {
	return &RoomRepository{db: database, logger: logger}
}

func (r *RoomRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]room.Room, error) {
	query := `
		SELECT id, owner_id, hotel_id, number, capacity, price_cents, created_at, updated_at
		FROM rooms
		WHERE owner_id = $1
		ORDER BY id`

	var rooms []room.Room
	if err := r.db.DB.SelectContext(ctx, &rooms, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (room.Room, error) {
	query := `
		SELECT id, owner_id, hotel_id, number, capacity, price_cents, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var rm room.Room
	if err := r.db.DB.GetContext(ctx, &rm, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room.Room{}, ports.ErrNotFound
		}
		return room.Room{}, fmt.Errorf("failed to get room: %w", err)
	}
	return rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm room.Room) (room.Room, error) {
	query := `
		INSERT INTO rooms (owner_id, hotel_id, number, capacity, price_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, hotel_id, number, capacity, price_cents, created_at, updated_at`

	var created room.Room
	if err := r.db.DB.GetContext(ctx, &created, query, rm.OwnerID, rm.HotelID, rm.Number, rm.Capacity, rm.PriceCents); err != nil {
		return room.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return created, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm room.Room) (room.Room, error) {
	query := `
		UPDATE rooms
		SET number = $2, capacity = $3, price_cents = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, hotel_id, number, capacity, price_cents, created_at, updated_at`

	var updated room.Room
	if err := r.db.DB.GetContext(ctx, &updated, query, rm.ID, rm.Number, rm.Capacity, rm.PriceCents); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room.Room{}, ports.ErrNotFound
		}
		return room.Room{}, fmt.Errorf("failed to update room: %w", err)
	}
	return updated, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
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
