// Package markup models the open tag of a bound element: its name and its
// ordered attributes. Tags are parsed from and written back to
// golang.org/x/net/html nodes so behaviors can modify attributes without
// touching the surrounding document.
package markup
