package domain

// AssemblyResult is what the coordinator returns for every admitted chunk:
// either the upload is still pending (progress fields populated for advisory
// UI feedback) or it just completed and Artifact is set.
type AssemblyResult struct {
	SessionID     string
	ReceivedCount int
	TotalCount    int
	ReceivedBytes int64
	DeclaredBytes int64
	Completed     bool
	Artifact      *Artifact
}

// Progress is the store's view of a session right after a chunk landed,
// observed atomically with the write that stored it.
type Progress struct {
	ReceivedCount int
	ReceivedBytes int64
	Complete      bool
}
