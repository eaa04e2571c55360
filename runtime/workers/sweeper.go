package workers

import (
	"chat-uploads/contract"
	"chat-uploads/services"
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// SessionSweeperWorker evicts upload sessions inactive past the configured
// timeout, freeing their buffered bytes. Abandoned uploads are detected
// purely by inactivity; no partial file is ever written for them.
type SessionSweeperWorker struct {
	log      *slog.Logger
	store    *services.SessionStore
	timeout  time.Duration
	interval time.Duration
	metrics  contract.MetricsSink
}

func NewSessionSweeperWorker(
	log *slog.Logger,
	store *services.SessionStore,
	timeout time.Duration,
	interval time.Duration,
	metrics contract.MetricsSink,
) *SessionSweeperWorker {
	return &SessionSweeperWorker{
		log:      log,
		store:    store,
		timeout:  timeout,
		interval: interval,
		metrics:  metrics,
	}
}

// Run sweeps on a fixed period until the context is canceled. The supervisor
// restarts the worker on panic, so one bad sweep never cancels the next.
func (w *SessionSweeperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting session sweeper", "timeout", w.timeout, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping session sweeper")
			return ctx.Err()
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SessionSweeperWorker) sweep() {
	removed := w.store.SweepInactive(w.timeout)
	if len(removed) == 0 {
		w.log.Debug("Sweep pass found nothing to evict", "active", w.store.Len())
		return
	}

	var freedBytes int64
	for _, session := range removed {
		freedBytes += session.ReceivedBytes()
		w.log.Debug("Evicted abandoned session",
			"session", session.ID,
			"file", session.FileName,
			"received", len(session.Chunks),
			"expected", session.ExpectedTotal,
		)
	}

	if w.metrics != nil {
		w.metrics.SessionsSwept(len(removed))
	}
	w.log.Info("Swept abandoned upload sessions",
		"evicted", len(removed),
		"freed", humanize.Bytes(uint64(freedBytes)),
		"active", w.store.Len(),
	)
}
