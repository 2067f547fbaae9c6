// Package completion wraps the external text-in/text-out language model
// endpoint used for answer interpretation and prompt generation.
package completion

import (
	"context"
	"errors"
)

// ErrNoCompletion reports that the service produced zero candidates. It is
// fatal for the current dialogue turn; nothing is retried.
var ErrNoCompletion = errors.New("completion: no candidates produced")

type Client interface {
	// Complete sends one prompt and returns the candidate completions in the
	// order the service produced them.
	Complete(ctx context.Context, prompt string) ([]string, error)
}
