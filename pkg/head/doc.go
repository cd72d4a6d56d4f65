// Package head collects the resources a render pass contributes to the page
// head: stylesheet references, script references and scripts that run once
// the DOM is ready.
//
// A Response deduplicates by reference identity, so components can render
// their resources on every pass without accumulating duplicates. Reference
// dependencies are rendered ahead of the reference that declares them.
package head
