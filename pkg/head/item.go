package head

import "strings"

// Kind identifies how an item is written into the page.
type Kind string

const (
	KindStylesheet Kind = "css"
	KindScript     Kind = "js"
	KindDomReady   Kind = "domready"
)

// Reference points at a static resource. Two references with the same URL
// are the same resource; Name is only used when URL is empty.
type Reference struct {
	Name         string
	URL          string
	Dependencies []Reference
}

// Key returns the identity used for deduplication.
func (r Reference) Key() string {
	if url := strings.TrimSpace(r.URL); url != "" {
		return url
	}
	return strings.TrimSpace(r.Name)
}

// Item is a single head contribution. Dependency marks items the response
// pulled in for another item rather than items rendered directly.
type Item struct {
	Kind       Kind
	Reference  Reference
	Script     string
	Dependency bool
}

// CSS renders a stylesheet link for ref.
func CSS(ref Reference) Item {
	return Item{Kind: KindStylesheet, Reference: ref}
}

// JS renders a script reference for ref.
func JS(ref Reference) Item {
	return Item{Kind: KindScript, Reference: ref}
}

// OnDomReady renders script inside the DOM-ready block.
func OnDomReady(script string) Item {
	return Item{Kind: KindDomReady, Script: script}
}

func (i Item) key() string {
	if i.Kind == KindDomReady {
		return "inline:" + strings.TrimSpace(i.Script)
	}
	return string(i.Kind) + ":" + i.Reference.Key()
}

func (i Item) empty() bool {
	if i.Kind == KindDomReady {
		return strings.TrimSpace(i.Script) == ""
	}
	return i.Reference.Key() == ""
}
