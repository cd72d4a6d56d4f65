package locales

import (
	"sort"
	"strings"
)

// Search returns the codes whose code or label contains query, codes
// starting with the query first.
func Search(codes []string, query string, limit int, opts Options) []Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchAll {
			return nil
		}
		if len(codes) > limit {
			codes = codes[:limit]
		}
		out := make([]Option, 0, len(codes))
		for _, code := range codes {
			out = append(out, Option{Value: code, Label: Label(code, opts.DisplayLanguage)})
		}
		return out
	}

	q := strings.ToLower(query)
	matches := make([]matchedLocale, 0, 16)
	for _, code := range codes {
		label := Label(code, opts.DisplayLanguage)
		lowerCode := strings.ToLower(code)
		if !strings.Contains(lowerCode, q) && !strings.Contains(strings.ToLower(label), q) {
			continue
		}
		matches = append(matches, matchedLocale{
			option:   Option{Value: code, Label: label},
			isPrefix: strings.HasPrefix(lowerCode, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].option.Value < matches[j].option.Value
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedLocale struct {
	option   Option
	isPrefix bool
}
