package domain

import "time"

// UploadSession is the volatile accumulation state of one in-flight chunked
// upload. It lives exclusively inside the session store: callers receive it
// only after eviction, when the store no longer references it.
type UploadSession struct {
	ID                string
	ExpectedTotal     int
	ContentType       string
	DeclaredFileSize  int64
	FileName          string
	OwnerContextID    string
	UploaderID        string
	RelatedArtifactID *string

	// Chunks maps 1-based index to decoded bytes. Re-submitting an index
	// overwrites it (last write wins); the distinct key count is what drives
	// completion, never the number of submissions.
	Chunks       map[int][]byte
	LastActivity time.Time

	// ClientProvidedID is true when the session key came from the client.
	// Only server-keyed sessions participate in correlation lookup.
	ClientProvidedID bool
}

// Correlation returns the fallback key under which id-less chunks match
// this session.
func (s *UploadSession) Correlation() CorrelationKey {
	return CorrelationKey{
		FileName:         s.FileName,
		ContentType:      s.ContentType,
		Total:            s.ExpectedTotal,
		DeclaredFileSize: s.DeclaredFileSize,
		OwnerContextID:   s.OwnerContextID,
		UploaderID:       s.UploaderID,
	}
}

// ReceivedBytes sums the buffered chunk sizes, for progress reporting and
// sweep logging.
func (s *UploadSession) ReceivedBytes() int64 {
	var total int64
	for _, data := range s.Chunks {
		total += int64(len(data))
	}
	return total
}

// IsComplete reports whether every index 1..ExpectedTotal is buffered.
// Counting distinct keys alone is not enough: a duplicated index would mask
// a real gap.
func (s *UploadSession) IsComplete() bool {
	if len(s.Chunks) < s.ExpectedTotal {
		return false
	}
	for i := 1; i <= s.ExpectedTotal; i++ {
		if _, ok := s.Chunks[i]; !ok {
			return false
		}
	}
	return true
}
