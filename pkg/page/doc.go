// Package page hosts components on an authored HTML body. Elements carrying
// a data-fw-id attribute are bound to the component with that id: the
// component is attached to the element on first render, its tag modifiers
// rewrite the element and its head contributions are collected into the
// document head.
package page
