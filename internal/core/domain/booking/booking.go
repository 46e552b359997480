package booking

import "time"

type Booking struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	RoomID    int64     `json:"room_id" db:"room_id"`
	GuestName string    `json:"guest_name" db:"guest_name"`
	CheckIn   time.Time `json:"check_in" db:"check_in"`
	CheckOut  time.Time `json:"check_out" db:"check_out"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EntityID implements ports.OwnedEntity.
func (b Booking) EntityID() int64 { return b.ID }

// EntityOwner implements ports.OwnedEntity.
func (b Booking) EntityOwner() int64 { return b.OwnerID }

// CreateBookingRequest represents the request to create a new booking.
type CreateBookingRequest struct {
	RoomID    int64     `json:"room_id" validate:"required"`
	GuestName string    `json:"guest_name" validate:"required"`
	CheckIn   time.Time `json:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
}

// UpdateBookingRequest represents a partial update to a booking.
type UpdateBookingRequest struct {
	GuestName *string    `json:"guest_name,omitempty"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
}
