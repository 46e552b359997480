package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/application/services"
	"github.com/stayops/hotel-management-api/internal/core/domain/hotel"
	"github.com/stayops/hotel-management-api/internal/core/ports"
)

// memCache is an in-memory ports.Cache that honors TTL expiry, with
// operation counters for asserting how the orchestrator touches it.
type memCache struct {
	mu      sync.Mutex
	items   map[string]memEntry
	gets    int
	sets    int
	deletes int
}

type memEntry struct {
	b   []byte
	exp time.Time
}

func newMemCache() *memCache {
	return &memCache{items: map[string]memEntry{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	e, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(c.items, key)
		return nil, false, nil
	}
	return e.b, true, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.items[key] = memEntry{b: value, exp: exp}
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	delete(c.items, key)
	return nil
}

func (c *memCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	for k := range c.items {
		if ok, _ := filepath.Match(pattern, k); ok {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return false
	}
	return e.exp.IsZero() || time.Now().Before(e.exp)
}

func (c *memCache) writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets + c.deletes
}

// faultyCache fails every operation; the orchestrator must treat it as a
// permanent miss and never surface the error.
type faultyCache struct{}

func (faultyCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (faultyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}
func (faultyCache) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}
func (faultyCache) DeleteByPattern(ctx context.Context, pattern string) error {
	return errors.New("connection refused")
}

// hotelRepoFake is an in-memory ports.ResourceRepository[hotel.Hotel] that
// counts FindAllByOwner calls to detect cache hits vs misses.
type hotelRepoFake struct {
	mu           sync.Mutex
	items        map[int64]hotel.Hotel
	nextID       int64
	findAllCalls int
}

func newHotelRepoFake() *hotelRepoFake {
	return &hotelRepoFake{items: map[int64]hotel.Hotel{}, nextID: 1}
}

func (r *hotelRepoFake) FindAllByOwner(ctx context.Context, ownerID int64) ([]hotel.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findAllCalls++
	var out []hotel.Hotel
	for _, h := range r.items {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *hotelRepoFake) FindByID(ctx context.Context, id int64) (hotel.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.items[id]
	if !ok {
		return hotel.Hotel{}, ports.ErrNotFound
	}
	return h, nil
}

func (r *hotelRepoFake) Create(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = r.nextID
	r.nextID++
	r.items[h.ID] = h
	return h, nil
}

func (r *hotelRepoFake) Update(ctx context.Context, h hotel.Hotel) (hotel.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[h.ID]; !ok {
		return hotel.Hotel{}, ports.ErrNotFound
	}
	r.items[h.ID] = h
	return h, nil
}

func (r *hotelRepoFake) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *hotelRepoFake) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findAllCalls
}

func newTestCache(cache ports.Cache, repo ports.ResourceRepository[hotel.Hotel], ttl time.Duration) *services.ResourceCache[hotel.Hotel] {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return services.NewResourceCache[hotel.Hotel](services.KindHotels, ttl, cache, repo, logger)
}

func TestListReadThrough(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[1] = hotel.Hotel{ID: 1, OwnerID: 7, Name: "Grand Hotel", Location: "NYC"}

	rc := newTestCache(cache, repo, time.Minute)

	first, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 || first[0].Name != "Grand Hotel" {
		t.Fatalf("unexpected result: %+v", first)
	}
	if repo.calls() != 1 {
		t.Fatalf("expected one repository query, got %d", repo.calls())
	}

	// Second read must be served from cache without a repository query.
	second, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls() != 1 {
		t.Fatalf("expected cache hit, repository queried %d times", repo.calls())
	}
	if len(second) != 1 || second[0].ID != first[0].ID {
		t.Fatalf("cache returned different data: %+v", second)
	}
}

func TestListDoesNotLeakAcrossOwners(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[1] = hotel.Hotel{ID: 1, OwnerID: 1, Name: "Mine", Location: "A"}
	repo.items[2] = hotel.Hotel{ID: 2, OwnerID: 2, Name: "Theirs", Location: "B"}

	rc := newTestCache(cache, repo, time.Minute)

	mine, err := rc.List(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theirs, err := rc.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Mine" {
		t.Fatalf("owner 1 sees wrong data: %+v", mine)
	}
	if len(theirs) != 1 || theirs[0].Name != "Theirs" {
		t.Fatalf("owner 2 sees wrong data: %+v", theirs)
	}
}

func TestCreateInvalidatesCollection(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	rc := newTestCache(cache, repo, time.Minute)

	if _, err := rc.Create(ctx, hotel.Hotel{OwnerID: 7, Name: "Grand Hotel", Location: "NYC"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Warm the collection, mutate, and verify the key is gone.
	if _, err := rc.List(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := services.CollectionKey(services.KindHotels, 7)
	if !cache.has(key) {
		t.Fatalf("expected warmed collection key")
	}

	if _, err := rc.Create(ctx, hotel.Hotel{OwnerID: 7, Name: "Second", Location: "LA"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.has(key) {
		t.Fatalf("collection key must be absent after create")
	}

	// Next read refills from persistence and sees both hotels.
	hotels, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("expected 2 hotels after refill, got %d", len(hotels))
	}
}

func TestUpdateInvalidatesBothKeys(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[5] = hotel.Hotel{ID: 5, OwnerID: 7, Name: "Old", Location: "NYC"}
	rc := newTestCache(cache, repo, time.Minute)

	collKey := services.CollectionKey(services.KindHotels, 7)
	entKey := services.EntityKey(services.KindHotels, 5, 7)
	if _, err := rc.List(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Seed the specific-entity key directly; reads never populate it, but a
	// mutation must still clear it.
	if err := cache.Set(ctx, entKey, []byte(`{}`), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newName := "New"
	updated, err := rc.Update(ctx, 7, 5, func(h hotel.Hotel) hotel.Hotel {
		h.Name = newName
		return h
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if cache.has(collKey) || cache.has(entKey) {
		t.Fatalf("both keys must be absent after update")
	}
}

func TestUpdateForbiddenLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[5] = hotel.Hotel{ID: 5, OwnerID: 2, Name: "Theirs", Location: "LA"}
	rc := newTestCache(cache, repo, time.Minute)

	before := cache.writes()
	_, err := rc.Update(ctx, 1, 5, func(h hotel.Hotel) hotel.Hotel {
		h.Name = "Hijacked"
		return h
	})
	if !errors.Is(err, ports.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if cache.writes() != before {
		t.Fatalf("cache must not be touched on forbidden mutation")
	}
	if repo.items[5].Name != "Theirs" {
		t.Fatalf("persistence mutated on forbidden update: %+v", repo.items[5])
	}
}

func TestUpdateNotFoundPerformsNoCacheOps(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	rc := newTestCache(cache, repo, time.Minute)

	before := cache.writes()
	_, err := rc.Update(ctx, 1, 99, func(h hotel.Hotel) hotel.Hotel { return h })
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := rc.Delete(ctx, 1, 99); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cache.writes() != before {
		t.Fatalf("cache must not be touched when the target is absent")
	}
}

func TestDeleteForbidden(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[5] = hotel.Hotel{ID: 5, OwnerID: 2, Name: "Theirs", Location: "LA"}
	rc := newTestCache(cache, repo, time.Minute)

	if err := rc.Delete(ctx, 1, 5); !errors.Is(err, ports.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.items[5]; !ok {
		t.Fatalf("record deleted despite ownership mismatch")
	}
}

func TestDeleteInvalidatesAndRemoves(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[5] = hotel.Hotel{ID: 5, OwnerID: 7, Name: "Doomed", Location: "LA"}
	rc := newTestCache(cache, repo, time.Minute)

	if _, err := rc.List(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rc.Delete(ctx, 7, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.has(services.CollectionKey(services.KindHotels, 7)) {
		t.Fatalf("collection key must be absent after delete")
	}
	hotels, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 0 {
		t.Fatalf("expected empty collection after delete, got %+v", hotels)
	}
}

func TestTTLExpiryForcesRefill(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[1] = hotel.Hotel{ID: 1, OwnerID: 7, Name: "Grand Hotel", Location: "NYC"}
	rc := newTestCache(cache, repo, 50*time.Millisecond)

	if _, err := rc.List(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls() != 1 {
		t.Fatalf("expected one repository query, got %d", repo.calls())
	}

	time.Sleep(120 * time.Millisecond)

	if cache.has(services.CollectionKey(services.KindHotels, 7)) {
		t.Fatalf("entry must be absent after TTL elapses")
	}
	if _, err := rc.List(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls() != 2 {
		t.Fatalf("expected refill after expiry, repository queried %d times", repo.calls())
	}
}

func TestCacheFaultsFailOpen(t *testing.T) {
	ctx := context.Background()
	repo := newHotelRepoFake()
	repo.items[1] = hotel.Hotel{ID: 1, OwnerID: 7, Name: "Grand Hotel", Location: "NYC"}
	rc := newTestCache(faultyCache{}, repo, time.Minute)

	// Every operation must succeed against a dead cache tier.
	hotels, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("list failed on cache fault: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("unexpected result: %+v", hotels)
	}

	if _, err := rc.Create(ctx, hotel.Hotel{OwnerID: 7, Name: "Second", Location: "LA"}); err != nil {
		t.Fatalf("create failed on cache fault: %v", err)
	}
	if _, err := rc.Update(ctx, 7, 1, func(h hotel.Hotel) hotel.Hotel { return h }); err != nil {
		t.Fatalf("update failed on cache fault: %v", err)
	}
	if err := rc.Delete(ctx, 7, 1); err != nil {
		t.Fatalf("delete failed on cache fault: %v", err)
	}
}

func TestUndecodableEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	cache := newMemCache()
	repo := newHotelRepoFake()
	repo.items[1] = hotel.Hotel{ID: 1, OwnerID: 7, Name: "Grand Hotel", Location: "NYC"}
	rc := newTestCache(cache, repo, time.Minute)

	key := services.CollectionKey(services.KindHotels, 7)
	if err := cache.Set(ctx, key, []byte("{not json"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hotels, err := rc.List(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 1 || !strings.Contains(hotels[0].Name, "Grand") {
		t.Fatalf("expected fallback to persistence, got %+v", hotels)
	}
}
