package room

import "time"

type Room struct {
	ID         int64     `json:"id" db:"id"`
	OwnerID    int64     `json:"owner_id" db:"owner_id"`
	HotelID    int64     `json:"hotel_id" db:"hotel_id"`
	Number     string    `json:"number" db:"number"`
	Capacity   int       `json:"capacity" db:"capacity"`
	PriceCents int64     `json:"price_cents" db:"price_cents"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// EntityID implements ports.OwnedEntity.
func (r Room) EntityID() int64 { return r.ID }

// EntityOwner implements ports.OwnedEntity.
func (r Room) EntityOwner() int64 { return r.OwnerID }

// CreateRoomRequest represents the request to create a new room.
type CreateRoomRequest struct {
	HotelID    int64  `json:"hotel_id" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	PriceCents int64  `json:"price_cents" validate:"min=0"`
}

// UpdateRoomRequest represents a partial update to a room.
type UpdateRoomRequest struct {
	Number     *string `json:"number,omitempty"`
	Capacity   *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PriceCents *int64  `json:"price_cents,omitempty" validate:"omitempty,min=0"`
}
