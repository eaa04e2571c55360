package services

import (
	"chat-uploads/contract"
	"chat-uploads/domain"
	"chat-uploads/domain/mimetypes"
	"chat-uploads/errors"
	"chat-uploads/mocks"
	"chat-uploads/repositories"
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCoordinator(t *testing.T, registry contract.IArtifactRegistry) *UploadCoordinator {
	t.Helper()
	log := slog.Default()

	root := t.TempDir()
	for _, sub := range mimetypes.Subdirectories() {
		require.NoError(t, os.MkdirAll(filepath.Join(root, string(sub)), 0o755))
	}

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewUploadCoordinator(
		log,
		NewChunkValidator(),
		NewSessionStore(log),
		NewHashingAssembler(log, root),
		NewDuplicateIndex(log, repositories.NewArtifactRepository(db, log)),
		registry,
		nil,
		CoordinatorConfig{
			MaxFileSizeBytes:    1 << 20,
			AllowedContentTypes: []string{"image/*", "application/pdf", "text/plain"},
		},
	)
}

func uploadChunk(sessionID *string, index, total int, body string) domain.Chunk {
	return domain.Chunk{
		SessionID:        sessionID,
		OwnerContextID:   "room-42",
		Index:            index,
		Total:            total,
		FileName:         "photo.png",
		ContentType:      "image/png",
		DeclaredFileSize: int64(total * 2),
		Payload:          base64.StdEncoding.EncodeToString([]byte(body)),
	}
}

func TestUploadCoordinator_Explicit_Session_Out_Of_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)
	sessionID := lo.ToPtr("upload-xyz")

	// Chunk 1 must arrive first to open an explicitly keyed session; the
	// rest may arrive in any order.
	result, err := coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 1, 4, "AA"), "alice")
	req.NoError(err)
	req.False(result.Completed)
	req.Equal("upload-xyz", result.SessionID)
	req.Equal(1, result.ReceivedCount)
	req.Equal(4, result.TotalCount)

	for _, step := range []struct {
		index int
		body  string
	}{{4, "DD"}, {2, "BB"}, {3, "CC"}} {
		result, err = coordinator.AdmitChunk(ctx, uploadChunk(sessionID, step.index, 4, step.body), "alice")
		req.NoError(err)
	}

	req.True(result.Completed)
	req.NotNil(result.Artifact)
	req.Equal(int64(8), result.ReceivedBytes)

	content, err := os.ReadFile(result.Artifact.StoragePath)
	req.NoError(err)
	req.Equal("AABBCCDD", string(content))
	req.False(result.Artifact.IsDuplicate)
	req.Equal("alice", result.Artifact.UploadedBy)
}

func TestUploadCoordinator_Correlated_Session_First_Arrival_Opens(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)

	// No session id anywhere; arrival order 2, 1, 3.
	result, err := coordinator.AdmitChunk(ctx, uploadChunk(nil, 2, 3, "BB"), "alice")
	req.NoError(err)
	req.False(result.Completed)
	req.NotEmpty(result.SessionID)
	key := result.SessionID

	result, err = coordinator.AdmitChunk(ctx, uploadChunk(nil, 1, 3, "AA"), "alice")
	req.NoError(err)
	req.Equal(key, result.SessionID)

	result, err = coordinator.AdmitChunk(ctx, uploadChunk(nil, 3, 3, "CC"), "alice")
	req.NoError(err)
	req.True(result.Completed)

	content, err := os.ReadFile(result.Artifact.StoragePath)
	req.NoError(err)
	req.Equal("AABBCC", string(content))
}

func TestUploadCoordinator_Correlated_Sessions_Do_Not_Cross_Uploaders(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)

	alice, err := coordinator.AdmitChunk(ctx, uploadChunk(nil, 1, 2, "AA"), "alice")
	req.NoError(err)
	bob, err := coordinator.AdmitChunk(ctx, uploadChunk(nil, 1, 2, "AA"), "bob")
	req.NoError(err)
	req.NotEqual(alice.SessionID, bob.SessionID)
}

func TestUploadCoordinator_Rejected_Type_Leaves_No_Session(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)
	sessionID := lo.ToPtr("upload-zip")

	chunk := uploadChunk(sessionID, 1, 2, "PK")
	chunk.ContentType = "application/zip"
	_, err := coordinator.AdmitChunk(ctx, chunk, "alice")
	req.ErrorIs(err, errors.ErrContentTypeNotAllowed)

	// No session was opened, so a follow-up chunk cannot find one and a
	// non-first chunk cannot open an explicitly keyed session.
	chunk = uploadChunk(sessionID, 2, 2, "PK")
	chunk.ContentType = "application/zip"
	_, err = coordinator.AdmitChunk(ctx, chunk, "alice")
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestUploadCoordinator_Declared_Size_Over_Limit(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)

	chunk := uploadChunk(lo.ToPtr("upload-big"), 1, 2, "AA")
	chunk.DeclaredFileSize = 2 << 20
	_, err := coordinator.AdmitChunk(ctx, chunk, "alice")
	req.ErrorIs(err, errors.ErrFileTooLarge)
}

func TestUploadCoordinator_Resubmitted_Index_Does_Not_Complete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)
	sessionID := lo.ToPtr("upload-dup")

	_, err := coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 1, 3, "AA"), "alice")
	req.NoError(err)

	// Index 3 arrives twice; total distinct indexes is still 2 of 3.
	result, err := coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 3, 3, "CC"), "alice")
	req.NoError(err)
	req.False(result.Completed)
	result, err = coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 3, 3, "cc"), "alice")
	req.NoError(err)
	req.False(result.Completed)
	req.Equal(2, result.ReceivedCount)

	// The real missing index completes; the overwrite (last write wins)
	// is what lands on disk.
	result, err = coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 2, 3, "BB"), "alice")
	req.NoError(err)
	req.True(result.Completed)

	content, err := os.ReadFile(result.Artifact.StoragePath)
	req.NoError(err)
	req.Equal("AABBcc", string(content))
}

func TestUploadCoordinator_Invalid_Chunk_Is_Rejected(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)

	chunk := uploadChunk(nil, 5, 3, "AA")
	_, err := coordinator.AdmitChunk(ctx, chunk, "alice")
	req.ErrorIs(err, errors.ErrValidation)
}

func TestUploadCoordinator_Duplicate_Content_Is_Flagged(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	coordinator := newCoordinator(t, nil)

	first, err := coordinator.AdmitChunk(ctx, uploadChunk(lo.ToPtr("upload-1"), 1, 1, "same bytes"), "alice")
	req.NoError(err)
	req.True(first.Completed)
	req.False(first.Artifact.IsDuplicate)

	// Same content uploaded again, different session and uploader.
	chunk := uploadChunk(lo.ToPtr("upload-2"), 1, 1, "same bytes")
	chunk.FileName = "copy.png"
	second, err := coordinator.AdmitChunk(ctx, chunk, "bob")
	req.NoError(err)
	req.True(second.Completed)
	req.True(second.Artifact.IsDuplicate)
	req.Equal(first.Artifact.ID, second.Artifact.OriginalArtifactID)
	req.Equal(first.Artifact.ContentDigest, second.Artifact.ContentDigest)

	// Both files exist on disk; dedup is record-level until a purge runs.
	_, err = os.Stat(first.Artifact.StoragePath)
	req.NoError(err)
	_, err = os.Stat(second.Artifact.StoragePath)
	req.NoError(err)
}

func TestUploadCoordinator_Registry_Called_Once_On_Completion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIArtifactRegistry(ctrl)
	coordinator := newCoordinator(t, registry)
	sessionID := lo.ToPtr("upload-reg")

	registry.EXPECT().
		RegisterArtifact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, artifact domain.Artifact) (string, error) {
			req.Equal("photo.png", artifact.OriginalFileName)
			req.NotEmpty(artifact.ContentDigest)
			return "record-1", nil
		}).
		Times(1)

	_, err := coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 1, 2, "AA"), "alice")
	req.NoError(err)
	result, err := coordinator.AdmitChunk(ctx, uploadChunk(sessionID, 2, 2, "BB"), "alice")
	req.NoError(err)
	req.True(result.Completed)
}

func TestUploadCoordinator_Registry_Failure_Does_Not_Fail_Upload(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIArtifactRegistry(ctrl)
	coordinator := newCoordinator(t, registry)

	registry.EXPECT().
		RegisterArtifact(gomock.Any(), gomock.Any()).
		Return("", context.DeadlineExceeded)

	result, err := coordinator.AdmitChunk(ctx, uploadChunk(lo.ToPtr("upload-reg-fail"), 1, 1, "AA"), "alice")
	req.NoError(err)
	req.True(result.Completed)
	req.NotNil(result.Artifact)
}

func TestUploadCoordinator_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	coordinator := newCoordinator(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := coordinator.AdmitChunk(ctx, uploadChunk(nil, 1, 1, "AA"), "alice")
	req.ErrorIs(err, context.Canceled)
}
