package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/tulisaja/tulisaja/storage"
)

// SweepInterval is how often expired prompt cache entries are removed.
const SweepInterval = 1 * time.Hour

type CacheSweeper struct {
	storage *storage.Storage
	ticker  *time.Ticker
	done    chan bool
}

func NewCacheSweeper(storage *storage.Storage) *CacheSweeper {
	return &CacheSweeper{
		storage: storage,
		done:    make(chan bool),
	}
}

// Start begins the prompt cache sweeper background job
func (s *CacheSweeper) Start(ctx context.Context) {
	slog.Info("starting prompt cache sweeper", "interval", SweepInterval)

	// Run immediately on start
	s.Sweep(ctx)

	// Then run on interval
	s.ticker = time.NewTicker(SweepInterval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.Sweep(ctx)
			case <-s.done:
				slog.Info("prompt cache sweeper stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (s *CacheSweeper) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
}

// Sweep deletes prompt cache entries past their expiry
func (s *CacheSweeper) Sweep(ctx context.Context) {
	slog.Debug("running prompt cache sweep")

	deleted, err := s.storage.Queries.DeleteExpiredPromptCache(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("failed to delete expired prompt cache entries", "error", err)
		return
	}

	if deleted > 0 {
		slog.Info("prompt cache sweep complete", "deleted", deleted)
	} else {
		slog.Debug("prompt cache sweep complete", "deleted", deleted)
	}
}
