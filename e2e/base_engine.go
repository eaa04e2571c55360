package e2e

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/suite"

	"chat-uploads/domain"
	"chat-uploads/domain/mimetypes"
	"chat-uploads/observability"
	"chat-uploads/repositories"
	"chat-uploads/runtime/workers"
	"chat-uploads/services"
	"chat-uploads/sink"
)

// BaseEngineSuite boots the whole upload engine in-process for each test:
// badger, the session store, the ingest pump and the sweeper under the real
// supervisor. Scenarios talk to it exactly like a transport handler would,
// through the chunk sink.
type BaseEngineSuite struct {
	suite.Suite
	Config Config

	Log        *slog.Logger
	Monitoring *observability.MonitoringManager
	Store      *services.SessionStore
	Repo       *repositories.ArtifactRepository
	Duplicates *services.DuplicateIndex
	Sink       *sink.ChunkSink
	UploadRoot string

	db         *badger.DB
	cancel     context.CancelFunc
	supervisor *workers.Supervisor
	done       chan struct{}
}

func (s *BaseEngineSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg
	s.Log = slog.Default()
}

func (s *BaseEngineSuite) SetupTest() {
	req := s.Require()

	s.UploadRoot = s.T().TempDir()
	for _, sub := range mimetypes.Subdirectories() {
		req.NoError(os.MkdirAll(filepath.Join(s.UploadRoot, string(sub)), 0o755))
	}

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	s.db = db

	s.Monitoring = observability.NewMonitoringManager(s.Log)
	s.Store = services.NewSessionStore(s.Log)
	s.Repo = repositories.NewArtifactRepository(db, s.Log)
	s.Duplicates = services.NewDuplicateIndex(s.Log, s.Repo)

	coordinator := services.NewUploadCoordinator(
		s.Log,
		services.NewChunkValidator(),
		s.Store,
		services.NewHashingAssembler(s.Log, s.UploadRoot),
		s.Duplicates,
		nil,
		s.Monitoring,
		services.CoordinatorConfig{
			MaxFileSizeBytes:    s.Config.MaxFileSizeBytes,
			AllowedContentTypes: []string{"image/*", "text/plain", "application/pdf"},
		},
	)

	s.Sink = sink.NewChunkSink(16)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.supervisor = workers.NewSupervisor(s.Log)
	s.supervisor.Add(
		workers.NewIngestWorker(s.Log, s.Sink, coordinator),
		workers.NewSessionSweeperWorker(
			s.Log,
			s.Store,
			time.Duration(s.Config.SessionTimeoutMs)*time.Millisecond,
			time.Duration(s.Config.SweepIntervalMs)*time.Millisecond,
			s.Monitoring,
		),
	)
	go func() {
		s.supervisor.Run(ctx)
		close(s.done)
	}()
}

func (s *BaseEngineSuite) TearDownTest() {
	s.cancel()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		s.T().Log("supervisor did not stop in time")
	}
	s.Require().NoError(s.db.Close())
}

// SendChunk pushes one chunk through the sink and waits for its outcome,
// the same round trip a connection handler performs.
func (s *BaseEngineSuite) SendChunk(chunk domain.Chunk, uploaderID string) sink.Outcome {
	reply := make(chan sink.Outcome, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Require().NoError(s.Sink.Consume(ctx, sink.Envelope{
		Chunk:      chunk,
		UploaderID: uploaderID,
		Reply:      reply,
	}))

	select {
	case outcome := <-reply:
		return outcome
	case <-ctx.Done():
		s.Require().Fail("no outcome received for chunk", "index %d", chunk.Index)
		return sink.Outcome{}
	}
}
