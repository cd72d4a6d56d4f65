// Package locales lists the language bundles available for the datepicker,
// with search helpers and a small net/http handler that returns JSON options
// for a language select.
//
// The handler responds to GET and HEAD requests and supports query and limit
// parameters. The backing list is embedded under data/datepicker_locales.txt.
package locales
