package locales

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed data/datepicker_locales.txt
var dataFS embed.FS

const defaultListPath = "data/datepicker_locales.txt"

var (
	defaultOnce    sync.Once
	defaultLocales []string
	defaultErr     error
)

// Option is one entry of a language select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultLocales returns the embedded bundle codes, sorted.
func DefaultLocales() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		codes, err := LoadLocales(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultLocales = codes
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultLocales...), nil
}

// LoadLocales reads one bundle code per line. Blank lines and # comments are
// skipped.
func LoadLocales(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("locales: missing reader")
	}

	scanner := bufio.NewScanner(r)
	codes := make([]string, 0, 96)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		codes = append(codes, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(codes)
	return codes, nil
}

// Supported reports whether a bundle exists for code. English is always
// supported because it ships with the generic script.
func Supported(code string) bool {
	code = strings.TrimSpace(code)
	if strings.EqualFold(code, "en") {
		return true
	}
	codes, err := DefaultLocales()
	if err != nil {
		return false
	}
	for _, candidate := range codes {
		if strings.EqualFold(candidate, code) {
			return true
		}
	}
	return false
}

// Label returns the display name of code in the display language, followed by
// the code. Codes that are not valid language tags are returned unchanged.
func Label(code string, in language.Tag) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.Tags(in).Name(tag)
	if name == "" {
		return code
	}
	return name + " (" + code + ")"
}

var (
	matcherOnce  sync.Once
	matcher      language.Matcher
	matcherCodes []string
)

// Bundle returns the bundle code serving tag. English resolves to "" when no
// regional bundle exists since it ships with the generic script. Other tags
// fall back to their base language and then to the closest bundle. ok is false
// when no bundle covers the language.
func Bundle(tag language.Tag) (code string, ok bool) {
	if tag == language.Und {
		return "", true
	}
	codes, err := DefaultLocales()
	if err != nil {
		return "", false
	}
	if code, found := lookup(codes, tag.String()); found {
		return code, true
	}
	base, _ := tag.Base()
	if base.String() == "en" {
		return "", true
	}
	if code, found := lookup(codes, base.String()); found {
		return code, true
	}

	matcherOnce.Do(func() { buildMatcher(codes) })
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High || idx < 0 || idx >= len(matcherCodes) {
		return "", false
	}
	return matcherCodes[idx], true
}

func lookup(codes []string, code string) (string, bool) {
	for _, candidate := range codes {
		if strings.EqualFold(candidate, code) {
			return candidate, true
		}
	}
	return "", false
}

// buildMatcher indexes the bundles that are valid language tags. English comes
// first and maps to the generic script.
func buildMatcher(codes []string) {
	tags := []language.Tag{language.English}
	matcherCodes = []string{""}
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		matcherCodes = append(matcherCodes, code)
	}
	matcher = language.NewMatcher(tags)
}
