package hotel

import "time"

type Hotel struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EntityID implements ports.OwnedEntity.
func (h Hotel) EntityID() int64 { return h.ID }

// EntityOwner implements ports.OwnedEntity.
func (h Hotel) EntityOwner() int64 { return h.OwnerID }

// CreateHotelRequest represents the request to create a new hotel. The owner
// is always taken from the authenticated principal, never from the body.
type CreateHotelRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// UpdateHotelRequest represents a partial update to a hotel.
type UpdateHotelRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}
