// Package behavior provides reusable component behaviors: tag name
// assertions, attribute modifiers and CSS class-name modifiers.
package behavior
