package activity

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shuv1824/kidsactivities/internal/types"
)

const (
	keyActivities = "activities"
	keyFeatured   = "featured"
	keyPopular    = "popular:"

	// fetchTimeout bounds a shared upstream fetch.
	fetchTimeout = 30 * time.Second
)

// Fetcher is the remote side of the cache.
type Fetcher interface {
	FetchActivities(ctx context.Context) ([]types.Activity, error)
	FetchFeaturedActivities(ctx context.Context) ([]types.Activity, error)
	FetchPopularActivities(ctx context.Context, n int) ([]types.Activity, error)
}

type fetchFunc func(ctx context.Context) ([]types.Activity, error)

type entry struct {
	data        []types.Activity
	lastUpdated time.Time
	fetch       fetchFunc
}

// CachedActivityService wraps a Fetcher with a per-query TTL cache. A failed
// refresh serves the previous value; with nothing cached it serves an empty
// list alongside the error.
type CachedActivityService struct {
	service      Fetcher
	cacheTTL     time.Duration
	popularCount int

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// NewCachedActivityService creates a cached activity service
func NewCachedActivityService(service Fetcher, cacheTTL time.Duration, popularCount int) *CachedActivityService {
	return &CachedActivityService{
		service:      service,
		cacheTTL:     cacheTTL,
		popularCount: popularCount,
		entries:      make(map[string]entry),
	}
}

func (c *CachedActivityService) Activities(ctx context.Context) ([]types.Activity, error) {
	return c.get(ctx, keyActivities, c.service.FetchActivities)
}

func (c *CachedActivityService) Featured(ctx context.Context) ([]types.Activity, error) {
	return c.get(ctx, keyFeatured, c.service.FetchFeaturedActivities)
}

func (c *CachedActivityService) Popular(ctx context.Context, n int) ([]types.Activity, error) {
	return c.get(ctx, keyPopular+strconv.Itoa(n), func(ctx context.Context) ([]types.Activity, error) {
		return c.service.FetchPopularActivities(ctx, n)
	})
}

func (c *CachedActivityService) get(ctx context.Context, key string, fetch fetchFunc) ([]types.Activity, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Since(e.lastUpdated) < c.cacheTTL {
		return cloneActivities(e.data), nil
	}

	data, err := c.load(ctx, key, fetch, c.cacheTTL)
	if err != nil {
		if ok {
			slog.WarnContext(ctx, "serving stale activities", "key", key, "error", err)
			return cloneActivities(e.data), nil
		}
		return []types.Activity{}, err
	}
	return cloneActivities(data), nil
}

// load fetches key once for all concurrent callers and stores the result.
// An entry younger than maxAge is returned without fetching. The shared fetch
// runs detached from any one caller; each caller stops waiting when its own
// ctx is done.
func (c *CachedActivityService) load(ctx context.Context, key string, fetch fetchFunc, maxAge time.Duration) ([]types.Activity, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Since(e.lastUpdated) < maxAge {
			return e.data, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		data, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{data: data, lastUpdated: time.Now(), fetch: fetch}
		c.mu.Unlock()

		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]types.Activity), nil
	}
}

// WarmCache pre-fetches the three landing page queries.
func (c *CachedActivityService) WarmCache(ctx context.Context) error {
	_, errActivities := c.Activities(ctx)
	_, errFeatured := c.Featured(ctx)
	_, errPopular := c.Popular(ctx, c.popularCount)
	return errors.Join(errActivities, errFeatured, errPopular)
}

// StartBackgroundRefresh refreshes every cached query at half the TTL until
// ctx is done.
func (c *CachedActivityService) StartBackgroundRefresh(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.cacheTTL / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refreshAll(ctx)
			}
		}
	}()
}

func (c *CachedActivityService) refreshAll(ctx context.Context) {
	c.mu.RLock()
	keys := make(map[string]fetchFunc, len(c.entries))
	for k, e := range c.entries {
		keys[k] = e.fetch
	}
	c.mu.RUnlock()

	for key, fetch := range keys {
		refreshCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		if _, err := c.load(refreshCtx, key, fetch, 0); err != nil {
			slog.Warn("background refresh failed", "key", key, "error", err)
		}
		cancel()
	}
}

func cloneActivities(in []types.Activity) []types.Activity {
	out := make([]types.Activity, len(in))
	copy(out, in)
	return out
}
