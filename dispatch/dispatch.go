// Package dispatch resolves capability requests through the provider chain:
// response cache first, then the native provider, then the remote fallback,
// finally a well-formed empty result. Every failure except a transport
// failure is absorbed into trying the next link; no link is ever retried
// within one request.
package dispatch

import (
	"errors"
	"time"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/internal/cache"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/log"
	"github.com/spf13/viper"
)

// Dispatcher orchestrates one native and one fallback adapter. Both are
// injected at construction and never swapped; all per-request state lives on
// the stack, so a single dispatcher serves concurrent requests.
type Dispatcher struct {
	native   catalog.Adapter
	fallback catalog.Adapter
	store    *cache.Store

	ttl       time.Duration
	searchTTL time.Duration
}

// New wires a dispatcher over the given adapters with cache settings from
// the configuration. A nil adapter is replaced by a stand-in that reports
// every capability unavailable, so the chain needs no nil checks.
func New(native, fallback catalog.Adapter) *Dispatcher {
	if native == nil {
		native = unavailable{}
	}
	if fallback == nil {
		fallback = unavailable{}
	}

	capacity := viper.GetInt(key.CacheCapacity)
	if capacity <= 0 {
		capacity = 300 // the LRU requires a positive capacity
	}

	ttl := viper.GetDuration(key.CacheTTL)
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	searchTTL := viper.GetDuration(key.CacheSearchTTL)
	if searchTTL <= 0 {
		searchTTL = ttl
	}

	return &Dispatcher{
		native:    native,
		fallback:  fallback,
		store:     cache.New(capacity),
		ttl:       ttl,
		searchTTL: searchTTL,
	}
}

// Pong is the liveness answer.
type Pong struct {
	OK       bool   `json:"ok"`
	Provider string `json:"provider"`
	Time     string `json:"time"`
}

// Ping reports process liveness and the provider that would serve first.
// It is answered directly, without touching the resolution chain.
func (d *Dispatcher) Ping() Pong {
	provider := d.fallback.Name()
	if available(d.native) {
		provider = d.native.Name()
	}

	return Pong{
		OK:       true,
		Provider: provider,
		Time:     time.Now().Format(time.RFC3339),
	}
}

// availability is implemented by adapters that can report whether they
// actually loaded. Adapters without it count as available.
type availability interface {
	Available() bool
}

func available(adapter catalog.Adapter) bool {
	if a, ok := adapter.(availability); ok {
		return a.Available()
	}
	return true
}

// unavailable stands in for a missing adapter.
type unavailable struct{}

func (unavailable) Name() string                           { return "none" }
func (unavailable) Available() bool                        { return false }
func (unavailable) Recent(int) ([]catalog.Raw, error)      { return nil, catalog.ErrUnavailable }
func (unavailable) TopAiring(int) ([]catalog.Raw, error)   { return nil, catalog.ErrUnavailable }
func (unavailable) Genres() ([]string, error)              { return nil, catalog.ErrUnavailable }
func (unavailable) Search(string) ([]catalog.Raw, error)   { return nil, catalog.ErrUnavailable }
func (unavailable) Details(string) (catalog.Raw, error)    { return nil, catalog.ErrUnavailable }
func (unavailable) Episodes(string) ([]catalog.Raw, error) { return nil, catalog.ErrUnavailable }
func (unavailable) Source(string) (catalog.Raw, error)     { return nil, catalog.ErrUnavailable }

// attempt runs one provider call and classifies the outcome. A raised call
// is logged and absorbed; unavailable and empty fall through silently; a
// transport failure is the one error that propagates.
func attempt[T any](capability string, usable func(T) bool, call func() (T, error)) (T, bool, error) {
	var zero T

	value, err := call()
	if err != nil {
		var callErr *catalog.CallError
		if errors.As(err, &callErr) {
			log.Warnf("Provider call raised for %s: %v", capability, err)
			return zero, false, nil
		}

		if catalog.Absorbed(err) {
			return zero, false, nil
		}

		return zero, false, err
	}

	if !usable(value) {
		return zero, false, nil
	}

	return value, true, nil
}

// resolveList drives the chain for a sequence-valued capability. A nil
// nativeCall skips the native link, used when the requested identifier
// already names the fallback catalog. An empty cacheKey disables caching.
func resolveList[T any](
	d *Dispatcher,
	capability string,
	cacheKey string,
	lifetime time.Duration,
	nativeCall func() ([]T, error),
	fallbackCall func() ([]T, error),
) ([]T, catalog.Provenance, error) {
	if cacheKey != "" {
		if cached, ok := d.store.Get(cacheKey); ok {
			return cached.([]T), cachedProvenance(cached), nil
		}
	}

	usable := func(v []T) bool { return len(v) > 0 }

	if nativeCall != nil {
		value, ok, err := attempt(capability, usable, nativeCall)
		if err != nil {
			return nil, catalog.ProvenanceNone, err
		}
		if ok {
			d.remember(cacheKey, value, lifetime)
			return value, catalog.ProvenanceNative, nil
		}
	}

	value, ok, err := attempt(capability, usable, fallbackCall)
	if err != nil {
		return nil, catalog.ProvenanceNone, err
	}
	if ok {
		d.remember(cacheKey, value, lifetime)
		return value, catalog.ProvenanceFallback, nil
	}

	return []T{}, catalog.ProvenanceNone, nil
}

// resolveOne drives the chain for a record-valued capability. The empty
// placeholder keeps the capability's well-formed shape when nothing serves.
func resolveOne[T any](
	d *Dispatcher,
	capability string,
	cacheKey string,
	lifetime time.Duration,
	empty T,
	usable func(T) bool,
	nativeCall func() (T, error),
	fallbackCall func() (T, error),
) (T, catalog.Provenance, error) {
	if cacheKey != "" {
		if cached, ok := d.store.Get(cacheKey); ok {
			return cached.(T), cachedProvenance(cached), nil
		}
	}

	if nativeCall != nil {
		value, ok, err := attempt(capability, usable, nativeCall)
		if err != nil {
			return empty, catalog.ProvenanceNone, err
		}
		if ok {
			d.remember(cacheKey, value, lifetime)
			return value, catalog.ProvenanceNative, nil
		}
	}

	value, ok, err := attempt(capability, usable, fallbackCall)
	if err != nil {
		return empty, catalog.ProvenanceNone, err
	}
	if ok {
		d.remember(cacheKey, value, lifetime)
		return value, catalog.ProvenanceFallback, nil
	}

	return empty, catalog.ProvenanceNone, nil
}

// remember caches a usable value; uncacheable capabilities pass an empty key.
func (d *Dispatcher) remember(cacheKey string, value any, lifetime time.Duration) {
	if cacheKey == "" {
		return
	}
	d.store.Set(cacheKey, value, lifetime)
}

// cachedProvenance recovers provenance from a cached value through its
// identifiers. The cache stores no provider identity, and empty values are
// never cached, so the first identifier is authoritative.
func cachedProvenance(value any) catalog.Provenance {
	switch v := value.(type) {
	case []catalog.CatalogItem:
		if len(v) > 0 {
			return catalog.ProvenanceOfID(v[0].ID)
		}
	case catalog.AnimeDetails:
		return catalog.ProvenanceOfID(v.ID)
	}

	return catalog.ProvenanceNone
}
