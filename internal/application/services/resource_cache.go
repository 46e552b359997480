package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/stayops/hotel-management-api/internal/core/ports"
)

var (
	cacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Cache lookups by entity kind and result (hit or miss)",
		},
		[]string{"kind", "result"},
	)

	cacheFaultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_faults_total",
			Help: "Cache store faults by entity kind and operation",
		},
		[]string{"kind", "op"},
	)
)

func init() {
	prometheus.MustRegister(cacheRequestsTotal)
	prometheus.MustRegister(cacheFaultsTotal)
}

// ResourceCache is a cache-aside layer over one entity kind's repository.
// Collection reads go through the cache; mutations write to the repository
// first and then invalidate the affected keys. The cache is best-effort:
// every cache fault is logged and swallowed, and the repository remains the
// sole authority on record state. Repository faults are hard errors.
type ResourceCache[T ports.OwnedEntity] struct {
	kind   string
	ttl    time.Duration
	cache  ports.Cache
	repo   ports.ResourceRepository[T]
	logger *logrus.Logger
	sf     singleflight.Group
}

// NewResourceCache wires a cache-aside orchestrator for one entity kind.
func NewResourceCache[T ports.OwnedEntity](kind string, ttl time.Duration, cache ports.Cache, repo ports.ResourceRepository[T], logger *logrus.Logger) *ResourceCache[T] {
	return &ResourceCache[T]{kind: kind, ttl: ttl, cache: cache, repo: repo, logger: logger}
}

// List returns all entities owned by ownerID, read-through cached under the
// owner's collection key. A cached hit is returned verbatim: the key already
// encodes the owner, so no re-filtering happens here. Concurrent misses for
// the same key are coalesced; the fill is a full snapshot, so last write wins.
func (s *ResourceCache[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	key := CollectionKey(s.kind, ownerID)

	if items, ok := s.cacheGetList(ctx, key); ok {
		cacheRequestsTotal.WithLabelValues(s.kind, "hit").Inc()
		return items, nil
	}
	cacheRequestsTotal.WithLabelValues(s.kind, "miss").Inc()

	res, err, _ := s.sf.Do(key, func() (any, error) {
		if items, ok := s.cacheGetList(ctx, key); ok {
			return items, nil
		}
		items, err := s.repo.FindAllByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		s.cacheSet(ctx, key, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return items, nil
}

// Create persists the entity and invalidates the owner's collection key.
// The caller has already forced the owner id onto the entity; client-supplied
// ownership is never trusted. The cached collection is not patched in place,
// the next read refills it.
func (s *ResourceCache[T]) Create(ctx context.Context, e T) (T, error) {
	created, err := s.repo.Create(ctx, e)
	if err != nil {
		var zero T
		return zero, err
	}
	s.cacheDelete(ctx, CollectionKey(s.kind, created.EntityOwner()))
	return created, nil
}

// Update mutates the entity with id on behalf of ownerID. The record is
// fetched first: a missing record is ErrNotFound and an owner mismatch is
// ErrForbidden, and in both cases neither the repository nor the cache is
// touched. On success both the collection key and the specific-entity key
// are invalidated before returning.
func (s *ResourceCache[T]) Update(ctx context.Context, ownerID, id int64, apply func(T) T) (T, error) {
	var zero T

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if current.EntityOwner() != ownerID {
		return zero, ports.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, apply(current))
	if err != nil {
		return zero, err
	}

	s.invalidateEntity(ctx, ownerID, id)
	return updated, nil
}

// Delete removes the entity with id on behalf of ownerID, with the same
// ownership pre-check and invalidation contract as Update.
func (s *ResourceCache[T]) Delete(ctx context.Context, ownerID, id int64) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current.EntityOwner() != ownerID {
		return ports.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateEntity(ctx, ownerID, id)
	return nil
}

// InvalidateOwner drops the owner's collection key and every specific-entity
// key of this kind for that owner.
func (s *ResourceCache[T]) InvalidateOwner(ctx context.Context, ownerID int64) {
	s.cacheDelete(ctx, CollectionKey(s.kind, ownerID))
	if err := s.cache.DeleteByPattern(ctx, OwnerKeyPattern(s.kind, ownerID)); err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "delete_pattern").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "owner_id": ownerID}).
			WithError(err).Error("cache pattern invalidation failed, stale entries may survive until TTL")
	}
}

func (s *ResourceCache[T]) invalidateEntity(ctx context.Context, ownerID, id int64) {
	s.cacheDelete(ctx, CollectionKey(s.kind, ownerID))
	s.cacheDelete(ctx, EntityKey(s.kind, id, ownerID))
}

// cacheGetList is fail-open: any transport or decode fault counts as a miss.
func (s *ResourceCache[T]) cacheGetList(ctx context.Context, key string) ([]T, bool) {
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "get").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "key": key}).
			WithError(err).Warn("cache get failed, falling back to database")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "decode").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "key": key}).
			WithError(err).Warn("cache entry undecodable, treating as miss")
		return nil, false
	}
	return items, true
}

// cacheSet is fail-open: a failed fill only costs a future miss.
func (s *ResourceCache[T]) cacheSet(ctx context.Context, key string, items []T) {
	b, err := json.Marshal(items)
	if err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "encode").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "key": key}).
			WithError(err).Warn("cache encode failed, skipping fill")
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "set").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "key": key}).
			WithError(err).Warn("cache set failed, skipping fill")
	}
}

// cacheDelete is fail-open but logged at error level: a lost invalidation
// after a mutation means a stale read can survive until the TTL expires.
func (s *ResourceCache[T]) cacheDelete(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		cacheFaultsTotal.WithLabelValues(s.kind, "delete").Inc()
		s.logger.WithFields(logrus.Fields{"kind": s.kind, "key": key}).
			WithError(err).Error("cache invalidation failed, stale entry may survive until TTL")
	}
}
