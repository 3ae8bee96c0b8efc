package generate

import "fmt"

// GenerationError reports a configuration that makes generation structurally
// impossible. The pipeline either returns a complete dungeon or one of
// these; it never returns a partial result.
type GenerationError struct {
	Stage  string
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Stage, e.Reason)
}
