package domain

import "encoding/base64"

// Chunk is one independently transmitted fragment of a file upload.
// The payload travels base64-encoded because chunks are carried as discrete
// messages on the chat channel, not as a byte stream.
type Chunk struct {
	// SessionID is client-supplied. nil means the client cannot echo a
	// server-generated id and relies on correlation (see CorrelationKey).
	// A non-nil empty string is a protocol error, not an absent id.
	SessionID *string

	OwnerContextID    string `validate:"required"`
	Index             int    `validate:"required,min=1"`
	Total             int    `validate:"required,min=1"`
	FileName          string `validate:"required"`
	ContentType       string `validate:"required"`
	DeclaredFileSize  int64  `validate:"required,min=1"`
	Payload           string `validate:"required"`
	RelatedArtifactID *string
}

// HasSessionID reports whether the client supplied an explicit session id.
func (c Chunk) HasSessionID() bool {
	return c.SessionID != nil && *c.SessionID != ""
}

// DecodePayload decodes the base64 chunk body.
func (c Chunk) DecodePayload() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.Payload)
}

// CorrelationKey is the fallback addressing mode for clients that cannot
// persist a session id across the chunk stream. Two chunks belong to the
// same upload iff every field matches exactly.
type CorrelationKey struct {
	FileName         string
	ContentType      string
	Total            int
	DeclaredFileSize int64
	OwnerContextID   string
	UploaderID       string
}

// Correlation builds the fallback key for a chunk admitted by uploaderID.
func (c Chunk) Correlation(uploaderID string) CorrelationKey {
	return CorrelationKey{
		FileName:         c.FileName,
		ContentType:      c.ContentType,
		Total:            c.Total,
		DeclaredFileSize: c.DeclaredFileSize,
		OwnerContextID:   c.OwnerContextID,
		UploaderID:       uploaderID,
	}
}
