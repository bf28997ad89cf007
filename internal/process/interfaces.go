package process

import (
	"context"

	"github.com/tunegrab/tunegrab/internal/model"
)

// Processor defines the interface for resolving a submitted link into a
// processing result.
type Processor interface {
	// ProcessLink submits the link to the processing backend and returns the
	// settled result. Failures are reported as *Error where the cause is known.
	ProcessLink(ctx context.Context, link string) (*model.ProcessResult, error)
}
