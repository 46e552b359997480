package services

import (
	"context"

	"github.com/stayops/hotel-management-api/internal/core/domain/hotel"
)

// HotelService exposes owner-scoped hotel operations over the cache-aside
// orchestrator. Request-to-entity mapping and owner forcing live here.
type HotelService struct {
	cache *ResourceCache[hotel.Hotel]
}

func NewHotelService(cache *ResourceCache[hotel.Hotel]) *HotelService {
	return &HotelService{cache: cache}
}

func (s *HotelService) ListHotels(ctx context.Context, ownerID int64) ([]hotel.Hotel, error) {
	return s.cache.List(ctx, ownerID)
}

func (s *HotelService) CreateHotel(ctx context.Context, ownerID int64, req *hotel.CreateHotelRequest) (hotel.Hotel, error) {
	return s.cache.Create(ctx, hotel.Hotel{
		OwnerID:  ownerID,
		Name:     req.Name,
		Location: req.Location,
	})
}

func (s *HotelService) UpdateHotel(ctx context.Context, ownerID, id int64, req *hotel.UpdateHotelRequest) (hotel.Hotel, error) {
	return s.cache.Update(ctx, ownerID, id, func(h hotel.Hotel) hotel.Hotel {
		if req.Name != nil {
			h.Name = *req.Name
		}
		if req.Location != nil {
			h.Location = *req.Location
		}
		return h
	})
}

func (s *HotelService) DeleteHotel(ctx context.Context, ownerID, id int64) error {
	return s.cache.Delete(ctx, ownerID, id)
}
