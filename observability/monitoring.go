package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// UploadStats aggregates engine metrics for the reporter worker and the
// debug endpoint.
type UploadStats struct {
	ChunksAdmitted    uint64  `json:"chunks_admitted"`
	IngestSpeed       float64 `json:"ingest_speed"` // MB/s over the last window
	SessionsOpened    uint64  `json:"sessions_opened"`
	SessionsCompleted uint64  `json:"sessions_completed"`
	SessionsSwept     uint64  `json:"sessions_swept"`
	SessionsFailed    uint64  `json:"sessions_failed"`
	DuplicatesFound   uint64  `json:"duplicates_found"`
	RejectedChunks    uint64  `json:"rejected_chunks"`
	ActiveSessions    int64   `json:"active_sessions"`
	BytesAssembled    uint64  `json:"bytes_assembled"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
}

// MonitoringManager is the process-local telemetry hub. It implements
// contract.MetricsSink so the coordinator and the sweeper can report without
// knowing about it; everything is atomic counters, nothing blocks.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats UploadStats
	lastCheck   time.Time

	chunksAdmitted    uint64
	ingestBytes       uint64 // reset every window to compute speed
	sessionsOpened    uint64
	sessionsCompleted uint64
	sessionsSwept     uint64
	sessionsFailed    uint64
	duplicatesFound   uint64
	rejectedChunks    uint64
	bytesAssembled    uint64
	activeSessions    int64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, lastCheck: time.Now()}
}

func (mm *MonitoringManager) ChunkAdmitted(payloadBytes int64) {
	atomic.AddUint64(&mm.chunksAdmitted, 1)
	atomic.AddUint64(&mm.ingestBytes, uint64(payloadBytes))
}

func (mm *MonitoringManager) SessionOpened() {
	atomic.AddUint64(&mm.sessionsOpened, 1)
	atomic.AddInt64(&mm.activeSessions, 1)
}

func (mm *MonitoringManager) SessionCompleted(sizeBytes int64) {
	atomic.AddUint64(&mm.sessionsCompleted, 1)
	atomic.AddUint64(&mm.bytesAssembled, uint64(sizeBytes))
	atomic.AddInt64(&mm.activeSessions, -1)
}

func (mm *MonitoringManager) ChunkRejected(reason string) {
	atomic.AddUint64(&mm.rejectedChunks, 1)
	mm.log.Debug("Chunk rejected", "reason", reason)
}

func (mm *MonitoringManager) SessionFailed(reason string) {
	atomic.AddUint64(&mm.sessionsFailed, 1)
	atomic.AddInt64(&mm.activeSessions, -1)
	mm.log.Debug("Session failed", "reason", reason)
}

func (mm *MonitoringManager) SessionsSwept(count int) {
	atomic.AddUint64(&mm.sessionsSwept, uint64(count))
	atomic.AddInt64(&mm.activeSessions, -int64(count))
}

func (mm *MonitoringManager) DuplicateFound() {
	atomic.AddUint64(&mm.duplicatesFound, 1)
}

// GetLatest returns the last computed snapshot.
func (mm *MonitoringManager) GetLatest() UploadStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}

// Listen recomputes the snapshot every second until the context is canceled.
func (mm *MonitoringManager) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(mm.lastCheck).Seconds()
	if duration > 0 {
		windowBytes := atomic.SwapUint64(&mm.ingestBytes, 0)
		mm.latestStats.IngestSpeed = (float64(windowBytes) / 1024 / 1024) / duration
	}
	mm.lastCheck = now

	mm.latestStats.ChunksAdmitted = atomic.LoadUint64(&mm.chunksAdmitted)
	mm.latestStats.SessionsOpened = atomic.LoadUint64(&mm.sessionsOpened)
	mm.latestStats.SessionsCompleted = atomic.LoadUint64(&mm.sessionsCompleted)
	mm.latestStats.SessionsSwept = atomic.LoadUint64(&mm.sessionsSwept)
	mm.latestStats.SessionsFailed = atomic.LoadUint64(&mm.sessionsFailed)
	mm.latestStats.DuplicatesFound = atomic.LoadUint64(&mm.duplicatesFound)
	mm.latestStats.RejectedChunks = atomic.LoadUint64(&mm.rejectedChunks)
	mm.latestStats.BytesAssembled = atomic.LoadUint64(&mm.bytesAssembled)
	mm.latestStats.ActiveSessions = atomic.LoadInt64(&mm.activeSessions)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	mm.latestStats.AllocMemMb = memStats.Alloc / 1024 / 1024
	mm.latestStats.NumGC = memStats.NumGC
}
