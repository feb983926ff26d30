// Package job holds the board refresh loop. Urgency states are derived from
// the clock at query time; this service is the clock collaborator that keeps
// cached pages from serving yesterday's "Ends today".
package job

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type refreshCache interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type RefreshService struct {
	cron     *cron.Cron
	cache    refreshCache
	notify   func(refreshedAt time.Time)
	logger   *log.Logger
	interval time.Duration
}

func NewRefreshService(cache refreshCache, notify func(time.Time), logger *log.Logger, interval time.Duration) *RefreshService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RefreshService{
		cron:     cron.New(),
		cache:    cache,
		notify:   notify,
		logger:   logger,
		interval: interval,
	}
}

// Start registers the tick and begins the loop.
func (s *RefreshService) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, s.tick)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	if s.logger != nil {
		s.logger.Printf("[Refresh] Started, spec=%s", spec)
	}
	return nil
}

func (s *RefreshService) Stop() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Stop()
	if s.logger != nil {
		s.logger.Printf("[Refresh] Stopped")
	}
}

// tick drops every cached board page and tells connected dashboards to
// re-query, so deadline labels are recomputed against the current clock.
func (s *RefreshService) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "board:page:*"); err != nil {
			if s.logger != nil {
				s.logger.Printf("[Refresh] Cache flush error: %v", err)
			}
		}
	}

	if s.notify != nil {
		s.notify(time.Now().UTC())
	}
}
