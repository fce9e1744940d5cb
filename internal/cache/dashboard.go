// Package cache holds the optional Redis cache in front of the backend's
// dashboard aggregate. A cache miss or Redis failure always falls through to
// the backend call; the cache is never authoritative.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

const keyDashboard = "dashboard:home"

var ttlDashboard = 5 * time.Minute

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

type Dashboard struct {
	rdb *redis.Client
	log *zap.Logger
}

// NewDashboard wraps a Redis client; rdb may be nil, which disables caching.
func NewDashboard(rdb *redis.Client, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dashboard{rdb: rdb, log: log}
}

func (d *Dashboard) Get(ctx context.Context) (*model.Dashboard, bool) {
	if d == nil || d.rdb == nil {
		return nil, false
	}
	raw, err := d.rdb.Get(ctx, keyDashboard).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.log.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var out model.Dashboard
	if err := json.Unmarshal(raw, &out); err != nil {
		d.log.Warn("dashboard cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &out, true
}

func (d *Dashboard) Set(ctx context.Context, dash *model.Dashboard) {
	if d == nil || d.rdb == nil || dash == nil {
		return
	}
	raw, err := json.Marshal(dash)
	if err != nil {
		return
	}
	if err := d.rdb.Set(ctx, keyDashboard, raw, ttlDashboard).Err(); err != nil {
		d.log.Warn("dashboard cache write failed", zap.Error(err))
	}
}
