package services

import "fmt"

// Entity kind segments used in cache keys. Kinds must never contain ':'
// since key segments are colon-delimited with no escaping.
const (
	KindHotels   = "hotels"
	KindRooms    = "rooms"
	KindBookings = "bookings"
)

// CacheKey builds the deterministic cache key for an entity kind, an optional
// entity id and an optional owner id (zero means absent). The precedence
// order is load-bearing: a collection lookup with a known owner must produce
// the owner-scoped form, never the kind-global one, or cached data would leak
// across owners. Existing keys persisted across restarts carry no version
// segment, so this order must not change.
//
//	owner and entity set -> "kind:owner:entity"
//	owner set            -> "kind:owner"
//	entity set           -> "kind:entity"
//	neither              -> "kind:all"
func CacheKey(kind string, entityID, ownerID int64) string {
	if entityID != 0 && ownerID != 0 {
		return fmt.Sprintf("%s:%d:%d", kind, ownerID, entityID)
	}
	if ownerID != 0 {
		return fmt.Sprintf("%s:%d", kind, ownerID)
	}
	if entityID != 0 {
		return fmt.Sprintf("%s:%d", kind, entityID)
	}
	return kind + ":all"
}

// CollectionKey is the key holding the full collection owned by one user.
func CollectionKey(kind string, ownerID int64) string {
	return CacheKey(kind, 0, ownerID)
}

// EntityKey is the key for one specific entity scoped to its owner.
func EntityKey(kind string, entityID, ownerID int64) string {
	return CacheKey(kind, entityID, ownerID)
}

// OwnerKeyPattern matches every specific-entity key of one owner for bulk
// invalidation. It deliberately ends with ":*" so owner 7 never matches
// owner 70.
func OwnerKeyPattern(kind string, ownerID int64) string {
	return fmt.Sprintf("%s:%d:*", kind, ownerID)
}
