package markup

import "github.com/microcosm-cc/bluemonday"

// FragmentPolicy returns a sanitizer for authored page fragments. Form
// controls, class/id attributes and data-* bindings survive; scripts, inline
// event handlers and styles are stripped.
func FragmentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements(
		"form", "fieldset", "legend", "label",
		"input", "select", "option", "textarea", "button",
	)
	policy.AllowAttrs("id", "class", "name", "title").Globally()
	policy.AllowAttrs(
		"type", "value", "placeholder", "autocomplete",
		"disabled", "readonly", "required", "for",
	).Globally()
	policy.AllowAttrs("method", "action").OnElements("form")
	policy.AllowDataAttributes()
	return policy
}
