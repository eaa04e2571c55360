//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-uploads/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need for
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IUploadCoordinator is the sole entry point of the upload engine.
// The transport layer supplies uploaderID already authenticated and already
// verified as a participant of the chunk's owner context.
type IUploadCoordinator interface {
	AdmitChunk(ctx context.Context, chunk domain.Chunk, uploaderID string) (domain.AssemblyResult, error)
}

// IArtifactRegistry is the outbound collaborator owning the chat-message /
// record schema. Called once per completed, classified artifact.
type IArtifactRegistry interface {
	RegisterArtifact(ctx context.Context, artifact domain.Artifact) (string, error)
}

// MetricsSink receives advisory telemetry from the engine. Implementations
// must be cheap and non-blocking; the engine never gates on them.
type MetricsSink interface {
	ChunkAdmitted(payloadBytes int64)
	ChunkRejected(reason string)
	SessionOpened()
	SessionCompleted(sizeBytes int64)
	SessionFailed(reason string)
	SessionsSwept(count int)
	DuplicateFound()
}
