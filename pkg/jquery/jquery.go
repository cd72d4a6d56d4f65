// Package jquery builds small jQuery call chains for generated activation
// scripts, e.g. $('#birthday').datepicker({"format":"dd.mm.yyyy"});
package jquery

import "strings"

// Function is one call in a chain. Params are written verbatim, so callers
// pass already serialized arguments (JSON objects, quoted strings).
type Function struct {
	Name   string
	Params []string
}

// Call constructs a Function, dropping empty params.
func Call(name string, params ...string) Function {
	fn := Function{Name: name}
	for _, param := range params {
		if strings.TrimSpace(param) == "" {
			continue
		}
		fn.Params = append(fn.Params, param)
	}
	return fn
}

// String renders name(param, ...).
func (f Function) String() string {
	return f.Name + "(" + strings.Join(f.Params, ",") + ")"
}

// Expression is a selector plus a chain of calls.
type Expression struct {
	selector  string
	functions []Function
}

// Select starts an expression for a CSS selector.
func Select(selector string) Expression {
	return Expression{selector: selector}
}

// ByID starts an expression selecting the element with markupID. CSS
// metacharacters in the id are backslash escaped, so "user.dob" selects the
// element with that id rather than #user with class dob.
func ByID(markupID string) Expression {
	return Select("#" + EscapeSelector(markupID))
}

const selectorMeta = " !\"#$%&'()*+,./:;<=>?@[\\]^`{|}~"

// EscapeSelector backslash escapes the CSS metacharacters in an identifier.
func EscapeSelector(ident string) string {
	if !strings.ContainsAny(ident, selectorMeta) {
		return ident
	}
	var b strings.Builder
	for _, r := range ident {
		if strings.ContainsRune(selectorMeta, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Chain returns a copy of the expression with functions appended.
func (e Expression) Chain(functions ...Function) Expression {
	chained := Expression{
		selector:  e.selector,
		functions: make([]Function, 0, len(e.functions)+len(functions)),
	}
	chained.functions = append(chained.functions, e.functions...)
	chained.functions = append(chained.functions, functions...)
	return chained
}

// String renders the statement, terminated with a semicolon.
func (e Expression) String() string {
	var b strings.Builder
	b.WriteString("$('")
	b.WriteString(quote(e.selector))
	b.WriteString("')")
	for _, fn := range e.functions {
		b.WriteByte('.')
		b.WriteString(fn.String())
	}
	b.WriteByte(';')
	return b.String()
}

var selectorEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\u003c`,
	">", `\u003e`,
)

func quote(selector string) string {
	return selectorEscaper.Replace(selector)
}
