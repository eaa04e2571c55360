package services

import (
	"chat-uploads/contract"
	"chat-uploads/domain"
	"chat-uploads/errors"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CoordinatorConfig is the policy surface applied on the first chunk of
// every upload, before any byte is buffered.
type CoordinatorConfig struct {
	MaxFileSizeBytes int64
	// AllowedContentTypes accepts exact media types ("image/png") and
	// single-level wildcards ("image/*").
	AllowedContentTypes []string
}

// UploadCoordinator orchestrates the whole chunk lifecycle: validate,
// resolve the session, buffer, detect completion, assemble, classify,
// hand off to the business layer. It is the engine's sole entry point.
type UploadCoordinator struct {
	log        *slog.Logger
	validator  *ChunkValidator
	store      *SessionStore
	assembler  *HashingAssembler
	duplicates *DuplicateIndex
	registry   contract.IArtifactRegistry
	metrics    contract.MetricsSink

	maxFileSize  int64
	allowedExact map[string]struct{}
	allowedKinds map[string]struct{} // "image" from "image/*"
}

func NewUploadCoordinator(
	log *slog.Logger,
	validator *ChunkValidator,
	store *SessionStore,
	assembler *HashingAssembler,
	duplicates *DuplicateIndex,
	registry contract.IArtifactRegistry,
	metrics contract.MetricsSink,
	cfg CoordinatorConfig,
) *UploadCoordinator {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	c := &UploadCoordinator{
		log:          log,
		validator:    validator,
		store:        store,
		assembler:    assembler,
		duplicates:   duplicates,
		registry:     registry,
		metrics:      metrics,
		maxFileSize:  cfg.MaxFileSizeBytes,
		allowedExact: make(map[string]struct{}),
		allowedKinds: make(map[string]struct{}),
	}
	for _, entry := range cfg.AllowedContentTypes {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if kind, ok := strings.CutSuffix(entry, "/*"); ok {
			c.allowedKinds[kind] = struct{}{}
		} else {
			c.allowedExact[entry] = struct{}{}
		}
	}
	return c
}

// AdmitChunk processes one inbound chunk and returns either a pending
// progress report or the completed artifact. Every failure is surfaced
// explicitly; a chunk is never silently dropped.
func (c *UploadCoordinator) AdmitChunk(ctx context.Context, chunk domain.Chunk, uploaderID string) (domain.AssemblyResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AssemblyResult{}, err
	}

	if err := c.validator.Validate(chunk); err != nil {
		c.metrics.ChunkRejected("validation")
		return domain.AssemblyResult{}, err
	}

	payload, err := chunk.DecodePayload()
	if err != nil {
		c.metrics.ChunkRejected("validation")
		return domain.AssemblyResult{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	key, created, err := c.resolveSession(chunk, uploaderID)
	if err != nil {
		return domain.AssemblyResult{}, err
	}
	if created {
		c.metrics.SessionOpened()
	}

	progress, err := c.store.AddChunk(key, chunk.Index, payload)
	if err != nil {
		// The sweeper can evict between resolution and buffering; to the
		// client this is the same correlation failure as any other.
		c.metrics.ChunkRejected("session_not_found")
		return domain.AssemblyResult{}, err
	}
	c.metrics.ChunkAdmitted(int64(len(payload)))

	if !progress.Complete {
		return domain.AssemblyResult{
			SessionID:     key,
			ReceivedCount: progress.ReceivedCount,
			TotalCount:    chunk.Total,
			ReceivedBytes: progress.ReceivedBytes,
			DeclaredBytes: chunk.DeclaredFileSize,
		}, nil
	}

	session, won := c.store.Remove(key)
	if !won {
		// A retransmission of the final index raced us and is assembling.
		return domain.AssemblyResult{
			SessionID:     key,
			ReceivedCount: progress.ReceivedCount,
			TotalCount:    chunk.Total,
			ReceivedBytes: progress.ReceivedBytes,
			DeclaredBytes: chunk.DeclaredFileSize,
		}, nil
	}

	return c.finalize(ctx, key, session)
}

// finalize runs on the evicted session's local copy; the store is no longer
// involved, so other uploads are never blocked by this upload's disk I/O.
// On any failure the session is gone for good: a retry means a full fresh
// upload from chunk 1.
func (c *UploadCoordinator) finalize(ctx context.Context, key string, session *domain.UploadSession) (domain.AssemblyResult, error) {
	assembled, err := c.assembler.Assemble(session)
	if err != nil {
		c.metrics.SessionFailed("assembly_io")
		return domain.AssemblyResult{}, err
	}

	artifact := domain.Artifact{
		ID:                uuid.NewString(),
		StoragePath:       assembled.Path,
		OriginalFileName:  session.FileName,
		ContentType:       session.ContentType,
		SizeBytes:         assembled.SizeBytes,
		ContentDigest:     assembled.Digest,
		UploadedBy:        session.UploaderID,
		UploadedAt:        time.Now(),
		RelatedArtifactID: session.RelatedArtifactID,
	}

	classified, err := c.duplicates.Classify(artifact)
	if err != nil {
		// The file stays on disk, unclassified and original by default,
		// rather than lost.
		c.log.Warn("Duplicate classification failed, keeping artifact as original",
			"artifact", artifact.ID, "error", err)
		classified = artifact
	}
	if classified.IsDuplicate {
		c.metrics.DuplicateFound()
	}

	if c.registry != nil {
		if recordID, err := c.registry.RegisterArtifact(ctx, classified); err != nil {
			c.log.Error("Artifact registration failed",
				"artifact", classified.ID, "error", err)
		} else {
			c.log.Debug("Artifact registered",
				"artifact", classified.ID, "record", recordID)
		}
	}

	c.metrics.SessionCompleted(assembled.SizeBytes)
	c.log.Info("Upload completed",
		"session", key,
		"file", classified.StoragePath,
		"digest", classified.ContentDigest,
		"duplicate", classified.IsDuplicate,
	)

	return domain.AssemblyResult{
		SessionID:     key,
		ReceivedCount: session.ExpectedTotal,
		TotalCount:    session.ExpectedTotal,
		ReceivedBytes: assembled.SizeBytes,
		DeclaredBytes: session.DeclaredFileSize,
		Completed:     true,
		Artifact:      &classified,
	}, nil
}

// resolveSession applies the dual addressing policy. An explicit session id
// is the literal key and only its index-1 chunk may open the session. An
// id-less chunk joins its upload through the correlation tuple; the first
// one to arrive (whatever its index — network reordering is expected) opens
// the session.
func (c *UploadCoordinator) resolveSession(chunk domain.Chunk, uploaderID string) (string, bool, error) {
	if chunk.HasSessionID() {
		key := *chunk.SessionID
		if _, ok := c.store.Find(key); ok {
			return key, false, nil
		}
		if chunk.Index != 1 {
			c.metrics.ChunkRejected("session_not_found")
			return "", false, fmt.Errorf("%w: session %q is not in flight, restart from chunk 1",
				errors.ErrSessionNotFound, key)
		}
		if err := c.checkPolicy(chunk); err != nil {
			return "", false, err
		}
		_, created := c.store.GetOrCreate(key, c.newSession(chunk, uploaderID, key, true))
		return key, created, nil
	}

	// Policy gates run before the store is touched so a rejected upload
	// never leaves a session behind. For an existing session the tuple
	// carries the same metadata, so re-checking is a no-op.
	if err := c.checkPolicy(chunk); err != nil {
		return "", false, err
	}
	session, created := c.store.GetOrCreateByCorrelation(
		chunk.Correlation(uploaderID),
		c.newSession(chunk, uploaderID, "", false),
	)
	return session.ID, created, nil
}

func (c *UploadCoordinator) newSession(chunk domain.Chunk, uploaderID, key string, clientProvided bool) func() *domain.UploadSession {
	return func() *domain.UploadSession {
		id := lo.Ternary(key != "", key, uuid.NewString())
		return &domain.UploadSession{
			ID:                id,
			ExpectedTotal:     chunk.Total,
			ContentType:       chunk.ContentType,
			DeclaredFileSize:  chunk.DeclaredFileSize,
			FileName:          chunk.FileName,
			OwnerContextID:    chunk.OwnerContextID,
			UploaderID:        uploaderID,
			RelatedArtifactID: chunk.RelatedArtifactID,
			Chunks:            make(map[int][]byte),
			LastActivity:      time.Now(),
			ClientProvidedID:  clientProvided,
		}
	}
}

func (c *UploadCoordinator) checkPolicy(chunk domain.Chunk) error {
	if !c.contentTypeAllowed(chunk.ContentType) {
		c.metrics.ChunkRejected("content_type")
		return fmt.Errorf("%w: %s", errors.ErrContentTypeNotAllowed, chunk.ContentType)
	}
	if c.maxFileSize > 0 && chunk.DeclaredFileSize > c.maxFileSize {
		c.metrics.ChunkRejected("file_too_large")
		return fmt.Errorf("%w: declared %d bytes, maximum %d",
			errors.ErrFileTooLarge, chunk.DeclaredFileSize, c.maxFileSize)
	}
	return nil
}

func (c *UploadCoordinator) contentTypeAllowed(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}
	if _, ok := c.allowedExact[mt]; ok {
		return true
	}
	kind, _, found := strings.Cut(mt, "/")
	if !found {
		return false
	}
	_, ok := c.allowedKinds[kind]
	return ok
}

type noopMetrics struct{}

func (noopMetrics) ChunkAdmitted(int64)    {}
func (noopMetrics) ChunkRejected(string)   {}
func (noopMetrics) SessionOpened()         {}
func (noopMetrics) SessionCompleted(int64) {}
func (noopMetrics) SessionFailed(string)   {}
func (noopMetrics) SessionsSwept(int)      {}
func (noopMetrics) DuplicateFound()        {}
