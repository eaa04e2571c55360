package services

import (
	"chat-uploads/domain"
	"chat-uploads/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ChunkValidator checks the structural invariants of one inbound chunk.
// It is pure: invalid chunks are rejected before any session state exists,
// so they can never pollute the store.
type ChunkValidator struct {
	validate *validator.Validate
}

func NewChunkValidator() *ChunkValidator {
	return &ChunkValidator{validate: validator.New()}
}

// Validate returns nil or an error wrapping errors.ErrValidation.
func (v *ChunkValidator) Validate(chunk domain.Chunk) error {
	if err := v.validate.Struct(chunk); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	if chunk.Index > chunk.Total {
		return fmt.Errorf("%w: index %d exceeds declared total %d",
			errors.ErrValidation, chunk.Index, chunk.Total)
	}

	// A supplied-but-empty session id is distinct from an absent one: the
	// client asked for explicit addressing and then gave no address.
	if chunk.SessionID != nil && *chunk.SessionID == "" {
		return fmt.Errorf("%w: session id supplied but empty", errors.ErrValidation)
	}

	if _, err := chunk.DecodePayload(); err != nil {
		return fmt.Errorf("%w: payload is not valid base64: %v", errors.ErrValidation, err)
	}

	return nil
}
