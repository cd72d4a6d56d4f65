package behavior

import "strings"

// SplitClassNames splits every value on whitespace and returns the non-empty
// tokens in order, keeping the first occurrence of duplicates.
func SplitClassNames(values ...string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			if _, exists := seen[token]; exists {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// JoinClassNames normalises values into a single space separated class list.
func JoinClassNames(values ...string) string {
	return strings.Join(SplitClassNames(values...), " ")
}
