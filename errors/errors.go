package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Upload engine taxonomy. The transport layer maps these to
	// structured client-facing errors; none of them is retried here.
	ErrValidation            = fmt.Errorf("invalid chunk")
	ErrContentTypeNotAllowed = fmt.Errorf("content type not allowed")
	ErrFileTooLarge          = fmt.Errorf("declared file size exceeds configured maximum")
	ErrSessionNotFound       = fmt.Errorf("no matching upload session")
	ErrAssemblyIO            = fmt.Errorf("file assembly failed")
	ErrDuplicateIndex        = fmt.Errorf("duplicate classification failed")
	ErrArtifactNotFound      = fmt.Errorf("artifact not found")
)
