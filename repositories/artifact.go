//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=../mocks/mock_artifact_repository.go -package=mocks
package repositories

import (
	"chat-uploads/domain"
	"chat-uploads/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IArtifactRepository interface {
	Save(artifact domain.Artifact) error
	Update(artifact domain.Artifact) error
	GetByID(id string) (domain.Artifact, error)
	ListByDigest(digest string) ([]domain.Artifact, error)
	ListAll() ([]domain.Artifact, error)
}

// ArtifactRepository persists artifact records in BadgerDB.
//
// Key design:
//
//	artifact:digest:{digest}:{uploaded_at_padded}:{id}  -> full record
//	artifact:id:{id}                                    -> digest key (pointer)
//
// The 19-digit zero-padded timestamp makes a prefix scan over one digest
// naturally earliest-first, which is exactly the order duplicate
// classification needs: the first record seen IS the original.
type ArtifactRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewArtifactRepository(db *badger.DB, log *slog.Logger) *ArtifactRepository {
	return &ArtifactRepository{db: db, log: log}
}

func digestKey(a domain.Artifact) []byte {
	return []byte(fmt.Sprintf("artifact:digest:%s:%019d:%s",
		a.ContentDigest, a.UploadedAt.UnixNano(), a.ID))
}

func idKey(id string) []byte {
	return []byte(fmt.Sprintf("artifact:id:%s", id))
}

// Save stores a new artifact record and its id pointer in one transaction.
func (r *ArtifactRepository) Save(artifact domain.Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(digestKey(artifact), data); err != nil {
			return err
		}
		return txn.Set(idKey(artifact.ID), digestKey(artifact))
	})
}

// Update rewrites an existing record in place. Digest, id and upload time
// are immutable, so the key is stable and Save and Update share the path.
func (r *ArtifactRepository) Update(artifact domain.Artifact) error {
	return r.Save(artifact)
}

// GetByID resolves the id pointer and loads the record.
func (r *ArtifactRepository) GetByID(id string) (domain.Artifact, error) {
	var artifact domain.Artifact
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", errors.ErrArtifactNotFound, id)
		}
		if err != nil {
			return err
		}
		var primaryKey []byte
		if err := item.Value(func(v []byte) error {
			primaryKey = append([]byte(nil), v...)
			return nil
		}); err != nil {
			return err
		}

		record, err := txn.Get(primaryKey)
		if err != nil {
			return fmt.Errorf("%w: dangling id pointer for %s", errors.ErrArtifactNotFound, id)
		}
		return record.Value(func(v []byte) error {
			return json.Unmarshal(v, &artifact)
		})
	})
	return artifact, err
}

// ListByDigest returns every record sharing a digest, earliest first.
func (r *ArtifactRepository) ListByDigest(digest string) ([]domain.Artifact, error) {
	prefix := []byte(fmt.Sprintf("artifact:digest:%s:", digest))
	return r.scan(prefix)
}

// ListAll returns every artifact record, used by the reconciliation pass
// and the inspector.
func (r *ArtifactRepository) ListAll() ([]domain.Artifact, error) {
	return r.scan([]byte("artifact:digest:"))
}

func (r *ArtifactRepository) scan(prefix []byte) ([]domain.Artifact, error) {
	var artifacts []domain.Artifact
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var artifact domain.Artifact
				if err := json.Unmarshal(v, &artifact); err != nil {
					return fmt.Errorf("failed to unmarshal artifact at %s: %w",
						string(it.Item().Key()), err)
				}
				artifacts = append(artifacts, artifact)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}
