package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())

	mm.SessionOpened()
	mm.SessionOpened()
	mm.ChunkAdmitted(1024)
	mm.ChunkAdmitted(2048)
	mm.ChunkRejected("validation")
	mm.SessionCompleted(3072)
	mm.DuplicateFound()
	mm.SessionsSwept(1)

	mm.updateStats()
	stats := mm.GetLatest()

	req.Equal(uint64(2), stats.ChunksAdmitted)
	req.Equal(uint64(2), stats.SessionsOpened)
	req.Equal(uint64(1), stats.SessionsCompleted)
	req.Equal(uint64(1), stats.SessionsSwept)
	req.Equal(uint64(1), stats.RejectedChunks)
	req.Equal(uint64(1), stats.DuplicatesFound)
	req.Equal(uint64(3072), stats.BytesAssembled)
	// Two opened, one completed, one swept.
	req.Equal(int64(0), stats.ActiveSessions)
}

func TestMonitoringManager_Failure_Releases_Active_Session(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())

	mm.SessionOpened()
	mm.SessionFailed("assembly_io")

	mm.updateStats()
	stats := mm.GetLatest()
	req.Equal(uint64(1), stats.SessionsFailed)
	req.Equal(int64(0), stats.ActiveSessions)
}
