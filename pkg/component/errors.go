package component

import goerrors "errors"

var (
	// ErrAlreadyAttached is returned when Attach runs on an attached component.
	ErrAlreadyAttached = goerrors.New("component: already attached")
	// ErrNotAttached is returned when rendering a component that was never
	// attached to markup.
	ErrNotAttached = goerrors.New("component: not attached")
)
