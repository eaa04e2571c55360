package sink

import (
	"chat-uploads/domain"
	"context"
)

// Outcome is what the transport gets back for one admitted chunk: a
// progress report, a completed artifact, or a structured failure to surface
// to the uploading client.
type Outcome struct {
	Result domain.AssemblyResult
	Err    error
}

// Envelope carries one inbound chunk from the transport layer. UploaderID is
// already authenticated and already verified as a participant of the chunk's
// owner context by the caller.
type Envelope struct {
	Chunk      domain.Chunk
	UploaderID string
	// Reply, when non-nil, receives the outcome. It should be buffered;
	// the engine will not wedge on a full reply channel.
	Reply chan<- Outcome
}

// ChunkSink decouples connection handlers from the coordinator: handlers
// push envelopes, the ingest worker drains them. The buffered channel is the
// natural backpressure boundary between the wire and the engine.
type ChunkSink struct {
	Inbound chan Envelope
}

func NewChunkSink(bufferSize int) *ChunkSink {
	return &ChunkSink{Inbound: make(chan Envelope, bufferSize)}
}

// Consume enqueues one chunk. A chunk is never silently dropped: when the
// sink is full, Consume blocks until there is room or the caller's context
// expires.
func (s *ChunkSink) Consume(ctx context.Context, env Envelope) error {
	select {
	case s.Inbound <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
