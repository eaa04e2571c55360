package services

import (
	"chat-uploads/domain"
	"chat-uploads/errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSession(id string, total int, clientProvided bool) func() *domain.UploadSession {
	return func() *domain.UploadSession {
		return &domain.UploadSession{
			ID:               id,
			ExpectedTotal:    total,
			ContentType:      "image/png",
			DeclaredFileSize: 64,
			FileName:         "photo.png",
			OwnerContextID:   "room-1",
			UploaderID:       "alice",
			Chunks:           make(map[int][]byte),
			LastActivity:     time.Now(),
			ClientProvidedID: clientProvided,
		}
	}
}

func TestSessionStore_GetOrCreate(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	first, created := store.GetOrCreate("upload-1", newTestSession("upload-1", 3, true))
	req.True(created)
	req.NotNil(first)

	second, created := store.GetOrCreate("upload-1", newTestSession("upload-1", 3, true))
	req.False(created)
	req.Same(first, second)
	req.Equal(1, store.Len())
}

func TestSessionStore_GetOrCreate_Concurrent_Single_Session(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	var creations atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created := store.GetOrCreate("upload-1", newTestSession("upload-1", 3, true))
			if created {
				creations.Add(1)
			}
		}()
	}
	wg.Wait()

	req.Equal(int32(1), creations.Load())
	req.Equal(1, store.Len())
}

func TestSessionStore_GetOrCreateByCorrelation(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	tuple := domain.CorrelationKey{
		FileName:         "photo.png",
		ContentType:      "image/png",
		Total:            3,
		DeclaredFileSize: 64,
		OwnerContextID:   "room-1",
		UploaderID:       "alice",
	}

	first, created := store.GetOrCreateByCorrelation(tuple, newTestSession("server-key-1", 3, false))
	req.True(created)

	second, created := store.GetOrCreateByCorrelation(tuple, newTestSession("server-key-2", 3, false))
	req.False(created)
	req.Same(first, second)

	key, ok := store.FindByCorrelation(tuple)
	req.True(ok)
	req.Equal("server-key-1", key)

	// A different uploader with otherwise identical metadata gets its own session.
	other := tuple
	other.UploaderID = "bob"
	third, created := store.GetOrCreateByCorrelation(other, newTestSession("server-key-3", 3, false))
	req.True(created)
	req.NotSame(first, third)
	req.Equal(2, store.Len())
}

func TestSessionStore_AddChunk(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())
	store.GetOrCreate("upload-1", newTestSession("upload-1", 3, true))

	progress, err := store.AddChunk("upload-1", 2, []byte("bbbb"))
	req.NoError(err)
	req.Equal(1, progress.ReceivedCount)
	req.Equal(int64(4), progress.ReceivedBytes)
	req.False(progress.Complete)

	progress, err = store.AddChunk("upload-1", 1, []byte("aa"))
	req.NoError(err)
	req.Equal(2, progress.ReceivedCount)
	req.False(progress.Complete)

	// Re-submitting an index overwrites, it never advances completion.
	progress, err = store.AddChunk("upload-1", 2, []byte("BB"))
	req.NoError(err)
	req.Equal(2, progress.ReceivedCount)
	req.Equal(int64(4), progress.ReceivedBytes)
	req.False(progress.Complete)

	progress, err = store.AddChunk("upload-1", 3, []byte("cc"))
	req.NoError(err)
	req.Equal(3, progress.ReceivedCount)
	req.True(progress.Complete)
	req.True(store.IsComplete("upload-1"))
}

func TestSessionStore_AddChunk_Unknown_Session(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	_, err := store.AddChunk("missing", 1, []byte("data"))
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestSessionStore_Remove_Single_Winner(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())
	store.GetOrCreate("upload-1", newTestSession("upload-1", 1, true))

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, won := store.Remove("upload-1"); won {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	req.Equal(int32(1), winners.Load())
	req.Equal(0, store.Len())
}

func TestSessionStore_Remove_Clears_Correlation(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	session, _ := store.GetOrCreateByCorrelation(
		domain.CorrelationKey{FileName: "a.png", ContentType: "image/png", Total: 1, DeclaredFileSize: 4, OwnerContextID: "room-1", UploaderID: "alice"},
		newTestSession("server-key-1", 1, false),
	)

	_, won := store.Remove(session.ID)
	req.True(won)

	_, ok := store.FindByCorrelation(session.Correlation())
	req.False(ok)
}

func TestSessionStore_SweepInactive(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(slog.Default())

	stale, _ := store.GetOrCreate("stale", newTestSession("stale", 3, true))
	stale.LastActivity = time.Now().Add(-2 * time.Hour)
	store.GetOrCreate("fresh", newTestSession("fresh", 3, true))

	removed := store.SweepInactive(1 * time.Hour)
	req.Len(removed, 1)
	req.Equal("stale", removed[0].ID)
	req.Equal(1, store.Len())

	_, ok := store.Find("fresh")
	req.True(ok)
}
