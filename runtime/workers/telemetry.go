package workers

import (
	"chat-uploads/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker periodically logs an engine snapshot together with the
// process self-stats (RSS, CPU), so an operator can spot a leaking session
// store without attaching a profiler.
type TelemetryWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

func NewTelemetryWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	metricInterval time.Duration,
) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		monitoring:     monitoring,
		metricInterval: metricInterval,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	w.log.Info("Starting telemetry worker", "interval", w.metricInterval)
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	stats := w.monitoring.GetLatest()

	var rss uint64
	var cpu float64
	if memInfo, err := p.MemoryInfo(); err == nil {
		rss = memInfo.RSS
	}
	if cpuPercent, err := p.CPUPercent(); err == nil {
		cpu = cpuPercent
	}

	w.log.Info("Upload engine telemetry",
		"active_sessions", stats.ActiveSessions,
		"chunks_admitted", stats.ChunksAdmitted,
		"ingest_speed_mb_s", stats.IngestSpeed,
		"completed", stats.SessionsCompleted,
		"swept", stats.SessionsSwept,
		"duplicates", stats.DuplicatesFound,
		"assembled", humanize.Bytes(stats.BytesAssembled),
		"rss", humanize.Bytes(rss),
		"cpu_percent", cpu,
	)
}
