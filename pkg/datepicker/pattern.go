package datepicker

import (
	"strings"

	"golang.org/x/text/language"
)

// defaultScriptPattern mirrors the plugin default format (mm/dd/yyyy).
const defaultScriptPattern = "MM/dd/yyyy"

type shortPattern struct {
	tag     language.Tag
	pattern string
}

// shortPatterns lists the short date pattern per locale. The first entry is
// the matcher fallback.
var shortPatterns = []shortPattern{
	{language.AmericanEnglish, "M/d/yy"},
	{language.BritishEnglish, "dd/MM/yy"},
	{language.MustParse("en-AU"), "d/MM/yy"},
	{language.MustParse("en-CA"), "yy-MM-dd"},
	{language.German, "dd.MM.yy"},
	{language.French, "dd/MM/yy"},
	{language.MustParse("fr-CA"), "yy-MM-dd"},
	{language.Spanish, "d/MM/yy"},
	{language.Italian, "dd/MM/yy"},
	{language.Dutch, "dd-MM-yy"},
	{language.Portuguese, "dd/MM/yy"},
	{language.BrazilianPortuguese, "dd/MM/yy"},
	{language.Russian, "dd.MM.yy"},
	{language.Polish, "dd.MM.yy"},
	{language.Czech, "dd.MM.yy"},
	{language.Norwegian, "dd.MM.yy"},
	{language.Danish, "dd-MM-yy"},
	{language.Finnish, "d.M.yyyy"},
	{language.Swedish, "yyyy-MM-dd"},
	{language.Turkish, "dd.MM.yyyy"},
	{language.Japanese, "yy/MM/dd"},
	{language.Korean, "yy. M. d."},
	{language.Chinese, "yy-M-d"},
}

var patternMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortPatterns))
	for idx, entry := range shortPatterns {
		tags[idx] = entry.tag
	}
	return language.NewMatcher(tags)
}()

// ShortDatePattern returns the short date pattern for tag. Unknown locales
// get the en-US pattern.
func ShortDatePattern(tag language.Tag) string {
	_, idx, confidence := patternMatcher.Match(tag)
	if confidence == language.No {
		return shortPatterns[0].pattern
	}
	return shortPatterns[idx].pattern
}

// ScriptFormat translates a date pattern (yyyy, MM, dd, MMM, EEEE, ...) into
// the plugin's format tokens (yyyy, mm, dd, M, DD, ...).
func ScriptFormat(pattern string) string {
	var b strings.Builder
	for _, tok := range tokenize(pattern) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(scriptToken(tok))
	}
	return b.String()
}

// GoLayout translates a date pattern into a time layout.
func GoLayout(pattern string) string {
	var b strings.Builder
	for _, tok := range tokenize(pattern) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(layoutToken(tok))
	}
	return b.String()
}

// ParseLayouts returns the Go layouts tried, in order, when parsing input
// written with pattern. A two digit year pattern also accepts four digit
// years, which the plugin writes with its own default format.
func ParseLayouts(pattern string) []string {
	layouts := []string{GoLayout(pattern)}

	var (
		b       strings.Builder
		widened bool
	)
	for _, tok := range tokenize(pattern) {
		switch {
		case tok.literal:
			b.WriteString(tok.text)
		case tok.text == "yy":
			b.WriteString("2006")
			widened = true
		default:
			b.WriteString(layoutToken(tok))
		}
	}
	if widened {
		layouts = append(layouts, b.String())
	}
	return layouts
}

func scriptToken(tok token) string {
	n := len(tok.text)
	switch tok.text[0] {
	case 'd':
		if n == 1 {
			return "d"
		}
		return "dd"
	case 'E':
		if n >= 4 {
			return "DD"
		}
		return "D"
	case 'M', 'L':
		switch {
		case n == 1:
			return "m"
		case n == 2:
			return "mm"
		case n == 3:
			return "M"
		default:
			return "MM"
		}
	case 'y':
		if n == 2 {
			return "yy"
		}
		return "yyyy"
	}
	return tok.text
}

func layoutToken(tok token) string {
	n := len(tok.text)
	switch tok.text[0] {
	case 'd':
		if n == 1 {
			return "2"
		}
		return "02"
	case 'E':
		if n >= 4 {
			return "Monday"
		}
		return "Mon"
	case 'M', 'L':
		switch {
		case n == 1:
			return "1"
		case n == 2:
			return "01"
		case n == 3:
			return "Jan"
		default:
			return "January"
		}
	case 'y':
		if n == 2 {
			return "06"
		}
		return "2006"
	case 'H':
		return "15"
	case 'h':
		if n == 1 {
			return "3"
		}
		return "03"
	case 'm':
		if n == 1 {
			return "4"
		}
		return "04"
	case 's':
		if n == 1 {
			return "5"
		}
		return "05"
	case 'a':
		return "PM"
	}
	return tok.text
}

type token struct {
	text    string
	literal bool
}

// tokenize splits pattern into runs of the same letter and literal text.
// Text between single quotes is literal and '' is a quote.
func tokenize(pattern string) []token {
	var (
		tokens  []token
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{text: literal.String(), literal: true})
			literal.Reset()
		}
	}

	runes := []rune(pattern)
	for idx := 0; idx < len(runes); {
		r := runes[idx]
		switch {
		case r == '\'':
			if idx+1 < len(runes) && runes[idx+1] == '\'' {
				literal.WriteRune('\'')
				idx += 2
				continue
			}
			idx++
			for idx < len(runes) {
				if runes[idx] == '\'' {
					if idx+1 < len(runes) && runes[idx+1] == '\'' {
						literal.WriteRune('\'')
						idx += 2
						continue
					}
					idx++
					break
				}
				literal.WriteRune(runes[idx])
				idx++
			}
		case isPatternLetter(r):
			flush()
			end := idx
			for end < len(runes) && runes[end] == r {
				end++
			}
			tokens = append(tokens, token{text: string(runes[idx:end])})
			idx = end
		default:
			literal.WriteRune(r)
			idx++
		}
	}
	flush()
	return tokens
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
