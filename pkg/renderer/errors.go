package renderer

import (
	"errors"
	"fmt"
)

// Stage identifies the part of a render that failed
type Stage string

const (
	StageSetup Stage = "setup" // Configuration or scene validation
	StageTrace Stage = "trace" // Worker row computation
	StageMerge Stage = "merge" // Row reassembly into the final buffer
)

var (
	// ErrBufferSizeMismatch is returned when merged rows do not total width*height*3 bytes
	ErrBufferSizeMismatch = errors.New("image buffer size mismatch")
	// ErrRowMismatch is returned when row results are duplicated or missing
	ErrRowMismatch = errors.New("row results do not cover the image")
	// ErrInvalidConfig is returned for unusable render settings
	ErrInvalidConfig = errors.New("invalid render config")
)

// RenderError reports which stage of a render failed
type RenderError struct {
	Stage Stage
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
