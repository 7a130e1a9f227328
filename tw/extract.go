package tw

import "strings"

// Extract returns the candidate class names found in source text, in order
// of first appearance. Variant groups are expanded. Candidates are not
// checked against any rule; unknown ones are dropped at generation time.
func Extract(text string) []string {
	text = expandGroups(text)

	seen := make(map[string]bool)
	var out []string
	for _, tok := range splitOutsideBrackets(text) {
		tok = strings.Trim(tok, ".,;:!?()")
		if tok == "" || seen[tok] || !ValidClassName(tok) {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// expandGroups rewrites each variant group in free text, e.g. `dark:(a b)`,
// into its expanded classes. Parentheses inside arbitrary values do not
// close a group.
func expandGroups(text string) string {
	var (
		b     strings.Builder
		last  int
		depth int
	)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
			continue
		case ']':
			if depth > 0 {
				depth--
			}
			continue
		case '\n':
			depth = 0
			continue
		}
		if text[i] != '(' || depth > 0 || i == 0 || text[i-1] != ':' {
			continue
		}

		start := i
		for start > last && isVariantByte(text[start-1]) {
			start--
		}
		for start < i && text[start] == ':' {
			start++
		}
		if start == i {
			continue
		}
		end := groupEnd(text, i)
		if end < 0 {
			continue
		}

		b.WriteString(text[last:start])
		b.WriteString(strings.Join(ExpandVariantGroups([]string{text[start : end+1]}), " "))
		last = end + 1
		i = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// groupEnd returns the index of the parenthesis closing the one at open, or
// -1 when the group is not closed on the same line.
func groupEnd(text string, open int) int {
	parens, brackets := 0, 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case '[':
			brackets++
		case ']':
			if brackets > 0 {
				brackets--
			}
		case '(':
			if brackets == 0 {
				parens++
			}
		case ')':
			if brackets == 0 {
				parens--
				if parens == 0 {
					return j
				}
			}
		case '\n':
			return -1
		}
	}
	return -1
}

func isVariantByte(c byte) bool {
	return c == '-' || c == '_' || c == ':' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// splitOutsideBrackets splits on delimiters outside square brackets. Bracket
// depth resets at each newline so a stray '[' in prose cannot swallow the
// rest of a file.
func splitOutsideBrackets(text string) []string {
	var (
		out   []string
		depth int
		start = -1
	)
	for i, r := range text {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '\n':
			depth = 0
		}
		if depth == 0 && isDelimiter(r) {
			if start >= 0 {
				out = append(out, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, text[start:])
	}
	return out
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '"', '\'', '`', '<', '>', '{', '}', '=', '|':
		return true
	}
	return false
}
