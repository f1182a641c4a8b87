package openai

import (
	"errors"
	"fmt"
)

// GenerationError reports that the chat collaborator failed or returned no
// content. It propagates to the request boundary untouched.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: generation failed (model=%s): %v", sourceName, e.Model, e.Err)
	}
	return fmt.Sprintf("%s: empty completion (model=%s)", sourceName, e.Model)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// AsGenerationError attempts to unwrap an error into a GenerationError.
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
