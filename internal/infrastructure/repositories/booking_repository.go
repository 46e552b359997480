package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/core/domain/booking"
	"github.com/stayops/hotel-management-api/internal/core/ports"
	"github.com/stayops/hotel-management-api/internal/infrastructure/db"
)

// BookingRepository implements ports.ResourceRepository for bookings.
type BookingRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewBookingRepository(database *db.Database, logger *logrus.Logger) ports.ResourceRepository[booking.Booking] {
	return &BookingRepository{db: database, logger: logger}
}

func (r *BookingRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]booking.Booking, error) {
	query := `
		SELECT id, owner_id, room_id, guest_name, check_in, check_out, created_at, updated_at
		FROM bookings
		WHERE owner_id = $1
		ORDER BY id`

	var bookings []booking.Booking
	if err := r.db.DB.SelectContext(ctx, &bookings, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (booking.Booking, error) {
	query := `
		SELECT id, owner_id, room_id, guest_name, check_in, check_out, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var b booking.Booking
	if err := r.db.DB.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.Booking{}, ports.ErrNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	query := `
		INSERT INTO bookings (owner_id, room_id, guest_name, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, room_id, guest_name, check_in, check_out, created_at, updated_at`

	var created booking.Booking
	if err := r.db.DB.GetContext(ctx, &created, query, b.OwnerID, b.RoomID, b.GuestName, b.CheckIn, b.CheckOut); err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

func (r *BookingRepository) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	query := `
		UPDATE bookings
		SET guest_name = $2, check_in = $3, check_out = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, room_id, guest_name, check_in, check_out, created_at, updated_at`

	var updated booking.Booking
	if err := r.db.DB.GetContext(ctx, &updated, query, b.ID, b.GuestName, b.CheckIn, b.CheckOut); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.Booking{}, ports.ErrNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}
	return updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
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
