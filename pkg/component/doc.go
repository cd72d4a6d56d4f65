// Package component is the minimal host the widgets bind to. A Component is
// attached to the open tag of its markup element once, then rendered any
// number of times. Behaviors participate through small capability
// interfaces:
//
//   - Attacher runs once when the component is attached.
//   - TagModifier adjusts a copy of the tag on every render.
//   - ResourceContributor renders head items on every render.
//
// A behavior may implement any subset of them.
package component
