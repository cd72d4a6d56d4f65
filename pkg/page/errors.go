package page

import goerrors "errors"

var (
	// ErrComponentNotInMarkup is wrapped when a component has no element.
	ErrComponentNotInMarkup = goerrors.New("page: component not found in markup")
	// ErrDuplicateComponent is wrapped when two components share an id.
	ErrDuplicateComponent = goerrors.New("page: duplicate component id")
)
