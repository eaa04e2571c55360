package workers

import (
	"chat-uploads/contract"
	"chat-uploads/sink"
	"context"
	"log/slog"
)

// IngestWorker pumps chunks from the transport sink into the coordinator and
// routes each outcome back to the submitting handler.
type IngestWorker struct {
	log         *slog.Logger
	chunkSink   *sink.ChunkSink
	coordinator contract.IUploadCoordinator
}

func NewIngestWorker(
	log *slog.Logger,
	chunkSink *sink.ChunkSink,
	coordinator contract.IUploadCoordinator,
) *IngestWorker {
	return &IngestWorker{log: log, chunkSink: chunkSink, coordinator: coordinator}
}

func (w *IngestWorker) Run(ctx context.Context) error {
	w.log.Info("Starting chunk ingest worker")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping chunk ingest worker")
			return ctx.Err()
		case env := <-w.chunkSink.Inbound:
			w.process(ctx, env)
		}
	}
}

func (w *IngestWorker) process(ctx context.Context, env sink.Envelope) {
	result, err := w.coordinator.AdmitChunk(ctx, env.Chunk, env.UploaderID)
	if err != nil {
		w.log.Warn("Chunk admission failed",
			"file", env.Chunk.FileName,
			"index", env.Chunk.Index,
			"uploader", env.UploaderID,
			"error", err,
		)
	}

	if env.Reply == nil {
		return
	}
	select {
	case env.Reply <- sink.Outcome{Result: result, Err: err}:
	default:
		// The handler walked away (disconnect, timeout). The outcome is
		// already logged; do not wedge the pump on it.
		w.log.Debug("Dropping outcome for absent reply channel", "file", env.Chunk.FileName)
	}
}
