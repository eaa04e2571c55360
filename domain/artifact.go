package domain

import "time"

// Artifact is a completed, durably stored file plus its descriptive metadata.
// Records outlive the application run; deletion is an explicit administrative
// operation (see the duplicate purge), never implicit.
type Artifact struct {
	ID               string    `json:"id"`
	StoragePath      string    `json:"storage_path"`
	OriginalFileName string    `json:"original_file_name"`
	ContentType      string    `json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	ContentDigest    string    `json:"content_digest"`
	IsDuplicate      bool      `json:"is_duplicate"`
	// OriginalArtifactID is set iff IsDuplicate: it points flat at the
	// first-seen artifact with the same digest, never at another duplicate.
	OriginalArtifactID string    `json:"original_artifact_id,omitempty"`
	UploadedBy         string    `json:"uploaded_by"`
	UploadedAt         time.Time `json:"uploaded_at"`
	// Retired marks a purged duplicate whose file was removed from storage.
	Retired bool `json:"retired,omitempty"`
	// RelatedArtifactID carries the client's "replace/attach to an existing
	// record" signal through to the registering business layer.
	RelatedArtifactID *string `json:"related_artifact_id,omitempty"`
}
