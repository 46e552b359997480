package services_test

import (
	"testing"

	"github.com/stayops/hotel-management-api/internal/application/services"
)

func TestCacheKeyPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		entityID int64
		ownerID  int64
		want     string
	}{
		{"owner and entity", services.KindHotels, 42, 7, "hotels:7:42"},
		{"owner only", services.KindHotels, 0, 7, "hotels:7"},
		{"entity only", services.KindRooms, 42, 0, "rooms:42"},
		{"neither", services.KindBookings, 0, 0, "bookings:all"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.CacheKey(tc.kind, tc.entityID, tc.ownerID); got != tc.want {
				t.Fatalf("CacheKey(%q, %d, %d) = %q, want %q", tc.kind, tc.entityID, tc.ownerID, got, tc.want)
			}
		})
	}
}

func TestCacheKeyNoCrossOwnerCollision(t *testing.T) {
	// A known owner must never degrade to the global form, and distinct
	// owner/entity pairs must never collide.
	seen := map[string]bool{}
	for owner := int64(1); owner <= 3; owner++ {
		for entity := int64(0); entity <= 3; entity++ {
			k := services.CacheKey(services.KindHotels, entity, owner)
			if k == "hotels:all" {
				t.Fatalf("owner-scoped key degraded to global form for owner=%d entity=%d", owner, entity)
			}
			if seen[k] {
				t.Fatalf("key collision on %q", k)
			}
			seen[k] = true
		}
	}
}

func TestOwnerKeyPattern(t *testing.T) {
	if got := services.OwnerKeyPattern(services.KindRooms, 7); got != "rooms:7:*" {
		t.Fatalf("unexpected pattern %q", got)
	}
	// The trailing ":*" keeps owner 7 from matching owner 70 keys.
	if got := services.CollectionKey(services.KindRooms, 70); got == "rooms:7" {
		t.Fatalf("owner 70 collection key collides with owner 7")
	}
}
