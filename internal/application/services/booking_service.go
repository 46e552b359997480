package services

import (
	"context"

	"github.com/stayops/hotel-management-api/internal/core/domain/booking"
)

// BookingService exposes owner-scoped booking operations over the cache-aside
// orchestrator.
type BookingService struct {
	cache *ResourceCache[booking.Booking]
}

func NewBookingService(cache *ResourceCache[booking.Booking]) *BookingService {
	return &BookingService{cache: cache}
}

func (s *BookingService) ListBookings(ctx context.Context, ownerID int64) ([]booking.Booking, error) {
	return s.cache.List(ctx, ownerID)
}

func (s *BookingService) CreateBooking(ctx context.Context, ownerID int64, req *booking.CreateBookingRequest) (booking.Booking, error) {
	return s.cache.Create(ctx, booking.Booking{
		OwnerID:   ownerID,
		RoomID:    req.RoomID,
		GuestName: req.GuestName,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	})
}

func (s *BookingService) UpdateBooking(ctx context.Context, ownerID, id int64, req *booking.UpdateBookingRequest) (booking.Booking, error) {
	return s.cache.Update(ctx, ownerID, id, func(b booking.Booking) booking.Booking {
		if req.GuestName != nil {
			b.GuestName = *req.GuestName
		}
		if req.CheckIn != nil {
			b.CheckIn = *req.CheckIn
		}
		if req.CheckOut != nil {
			b.CheckOut = *req.CheckOut
		}
		return b
	})
}

func (s *BookingService) DeleteBooking(ctx context.Context, ownerID, id int64) error {
	return s.cache.Delete(ctx, ownerID, id)
}
