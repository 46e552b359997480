package services

import (
	"context"

	"github.com/stayops/hotel-management-api/internal/core/domain/room"
)

// RoomService exposes owner-scoped room operations over the cache-aside
// orchestrator.
type RoomService struct {
	cache *ResourceCache[room.Room]
}

func NewRoomService(cache *ResourceCache[room.Room]) *RoomService {
	return &RoomService{cache: cache}
}

func (s *RoomService) ListRooms(ctx context.Context, ownerID int64) ([]room.Room, error) {
	return s.cache.List(ctx, ownerID)
}

func (s *RoomService) CreateRoom(ctx context.Context, ownerID int64, req *room.CreateRoomRequest) (room.Room, error) {
	return s.cache.Create(ctx, room.Room{
		OwnerID:    ownerID,
		HotelID:    req.HotelID,
		Number:     req.Number,
		Capacity:   req.Capacity,
		PriceCents: req.PriceCents,
	})
}

func (s *RoomService) UpdateRoom(ctx context.Context, ownerID, id int64, req *room.UpdateRoomRequest) (room.Room, error) {
	return s.cache.Update(ctx, ownerID, id, func(r room.Room) room.Room {
		if req.Number != nil {
			r.Number = *req.Number
		}
		if req.Capacity != nil {
			r.Capacity = *req.Capacity
		}
		if req.PriceCents != nil {
			r.PriceCents = *req.PriceCents
		}
		return r
	})
}

func (s *RoomService) DeleteRoom(ctx context.Context, ownerID, id int64) error {
	return s.cache.Delete(ctx, ownerID, id)
}
