// Package datepicker binds the bootstrap-datepicker jQuery plugin to a text
// input component.
//
// A Config is an immutable option bag: every setter returns a new value and
// options equal to the plugin defaults are dropped, so the serialized object
// only carries what differs from the plugin's own behaviour. The TextField
// asserts it is attached to an <input>, forces type="text", and on every
// render contributes the plugin stylesheet, either the generic script or the
// language bundle, and a DOM-ready activation script:
//
//	$('#birthday').datepicker({"format":"dd.mm.yyyy","language":"de"});
//
// When no format is configured the field falls back to the short date
// pattern of its locale for parsing and formatting values.
package datepicker
