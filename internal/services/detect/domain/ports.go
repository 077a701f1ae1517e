package domain

import (
	"context"

	"polyglot/internal/core/pipeline"
)

// RunnerPort is the startup-built pipeline the service calls into
type RunnerPort interface {
	Run(ctx context.Context, text string, k int) (pipeline.Result, error)
}

// DetectorPort is the presentation contract exposed to transports and other modules
type DetectorPort interface {
	// HandleRequest returns the two line display string, or Prompt for blank input
	HandleRequest(ctx context.Context, raw string) (string, error)

	// Detect is the structured form of HandleRequest
	Detect(ctx context.Context, in DetectInput) (DetectOutput, error)
}

// Ports are dependencies injected into the detect module
type Ports struct {
	Runner RunnerPort // required
}
