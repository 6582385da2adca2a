package niber

import (
	stderrors "errors"

	"github.com/vango-dev/niber/internal/errors"
)

// Errors reported by the runtime. Match them with errors.Is; the runtime's
// errors carry more detail but compare equal by code.
var (
	// ErrHookOutsideRender is the configuration error raised (as a panic) by
	// hooks called without an active render.
	ErrHookOutsideRender error = errors.New("E001")

	// ErrNoRoot is reported when a state update runs with nothing mounted.
	ErrNoRoot error = errors.New("E002")

	// ErrHookOrder is raised (as a panic) when a hook cell holds a value of
	// another type than the hook reading it.
	ErrHookOrder error = errors.New("E003")

	// ErrInvalidAction is raised (as a panic) by Setter.Dispatch.
	ErrInvalidAction error = errors.New("E004")

	// ErrCommit wraps errors returned by a Container.
	ErrCommit error = errors.New("E005")
)

// IsConfigurationError reports whether v, typically a value recovered from a
// panic, is the error raised by a hook called outside a render.
func IsConfigurationError(v any) bool {
	err, ok := v.(error)
	return ok && stderrors.Is(err, ErrHookOutsideRender)
}
