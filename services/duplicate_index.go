package services

import (
	"chat-uploads/domain"
	"chat-uploads/errors"
	"chat-uploads/repositories"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// digestLockCount sizes the striped lock table. Classification for different
// digests proceeds in parallel; two concurrent uploads of the same bytes
// serialize on one stripe so they cannot both be classified as "first".
const digestLockCount = 32

// DuplicateIndex content-addresses assembled files: the first artifact seen
// with a digest is the original, every later one is flagged duplicate with a
// flat reference to that original (never chained through other duplicates).
type DuplicateIndex struct {
	log   *slog.Logger
	repo  repositories.IArtifactRepository
	locks [digestLockCount]sync.Mutex
}

func NewDuplicateIndex(log *slog.Logger, repo repositories.IArtifactRepository) *DuplicateIndex {
	return &DuplicateIndex{log: log, repo: repo}
}

func (d *DuplicateIndex) lockFor(digest string) *sync.Mutex {
	var sum uint32
	for i := 0; i < len(digest); i++ {
		sum = sum*31 + uint32(digest[i])
	}
	return &d.locks[sum%digestLockCount]
}

// Classify stores the candidate as original or duplicate depending on what
// the index already holds for its digest. Lookup and insert are atomic per
// digest. Errors wrap errors.ErrDuplicateIndex; the caller keeps the file
// and falls back to original-by-default rather than losing it.
func (d *DuplicateIndex) Classify(candidate domain.Artifact) (domain.Artifact, error) {
	mu := d.lockFor(candidate.ContentDigest)
	mu.Lock()
	defer mu.Unlock()

	existing, err := d.repo.ListByDigest(candidate.ContentDigest)
	if err != nil {
		return candidate, fmt.Errorf("%w: lookup for %s: %v",
			errors.ErrDuplicateIndex, candidate.ContentDigest, err)
	}

	if len(existing) == 0 {
		candidate.IsDuplicate = false
		candidate.OriginalArtifactID = ""
	} else {
		original := existing[0] // earliest-first scan order
		candidate.IsDuplicate = true
		candidate.OriginalArtifactID = original.ID
		if original.IsDuplicate && original.OriginalArtifactID != "" {
			// Should not happen with a healthy index; keep references flat
			// anyway instead of chaining through a mislabeled record.
			candidate.OriginalArtifactID = original.OriginalArtifactID
		}
		d.log.Info("Duplicate upload detected",
			"digest", candidate.ContentDigest,
			"original", candidate.OriginalArtifactID,
			"duplicate", candidate.ID,
		)
	}

	if err := d.repo.Save(candidate); err != nil {
		return candidate, fmt.Errorf("%w: storing %s: %v",
			errors.ErrDuplicateIndex, candidate.ID, err)
	}
	return candidate, nil
}

// ListDuplicates returns every non-retired duplicate record.
func (d *DuplicateIndex) ListDuplicates() ([]domain.Artifact, error) {
	all, err := d.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(a domain.Artifact, _ int) bool {
		return a.IsDuplicate && !a.Retired
	}), nil
}

// PurgeDuplicates deletes every duplicate's file from storage and marks its
// record retired. Originals are untouched. Per-artifact failures are logged
// and skipped so one bad entry cannot block the purge.
func (d *DuplicateIndex) PurgeDuplicates() (int, error) {
	duplicates, err := d.ListDuplicates()
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, dup := range duplicates {
		if err := os.Remove(dup.StoragePath); err != nil && !os.IsNotExist(err) {
			d.log.Error("Failed to remove duplicate file", "path", dup.StoragePath, "error", err)
			continue
		}
		dup.Retired = true
		if err := d.repo.Update(dup); err != nil {
			d.log.Error("Failed to retire duplicate record", "id", dup.ID, "error", err)
			continue
		}
		purged++
	}

	d.log.Info("Duplicate purge finished", "purged", purged, "candidates", len(duplicates))
	return purged, nil
}

// RebuildFromExisting reconciles the whole index: records are grouped by
// digest, the earliest in each group becomes (or stays) the original and the
// rest are re-flagged as duplicates pointing at it. Used for backfill after
// importing artifacts that never went through Classify, and as an audit pass.
func (d *DuplicateIndex) RebuildFromExisting() (int, error) {
	all, err := d.repo.ListAll()
	if err != nil {
		return 0, err
	}

	groups := lo.GroupBy(all, func(a domain.Artifact) string { return a.ContentDigest })

	duplicatesFound := 0
	for digest, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].UploadedAt.Before(group[j].UploadedAt)
		})

		original := group[0]
		if original.IsDuplicate {
			original.IsDuplicate = false
			original.OriginalArtifactID = ""
			if err := d.repo.Update(original); err != nil {
				d.log.Error("Failed to promote original", "id", original.ID, "error", err)
				continue
			}
		}

		for _, a := range group[1:] {
			duplicatesFound++
			if a.IsDuplicate && a.OriginalArtifactID == original.ID {
				continue // already correct
			}
			a.IsDuplicate = true
			a.OriginalArtifactID = original.ID
			if err := d.repo.Update(a); err != nil {
				d.log.Error("Failed to re-flag duplicate", "id", a.ID, "digest", digest, "error", err)
			}
		}
	}

	d.log.Info("Duplicate index rebuild finished",
		"records", len(all), "duplicates", duplicatesFound)
	return duplicatesFound, nil
}
