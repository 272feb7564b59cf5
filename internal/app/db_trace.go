package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	valuesKeywordRegex   = regexp.MustCompile(`(?i)\bVALUES\s*\(`)
)

// formatDBQueryForTrace flattens whitespace and collapses multi-row VALUES
// lists, so a fixture insert shows its first row and a row count instead of
// every placeholder.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := collapseValuesRows(queryWhitespaceRegex.ReplaceAllString(query, " "))
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func collapseValuesRows(query string) string {
	loc := valuesKeywordRegex.FindStringIndex(query)
	if loc == nil {
		return query
	}

	start := loc[1] - 1
	firstEnd := -1
	rows := 0
	end := start
	for end < len(query) {
		closeAt := matchingParen(query, end)
		if closeAt < 0 {
			return query
		}
		rows++
		if firstEnd < 0 {
			firstEnd = closeAt + 1
		}
		end = closeAt + 1

		next := skipSpaces(query, end)
		if next >= len(query) || query[next] != ',' {
			break
		}
		next = skipSpaces(query, next+1)
		if next >= len(query) || query[next] != '(' {
			break
		}
		end = next
	}
	if rows < 2 {
		return query
	}

	return query[:firstEnd] + " /* " + strconv.Itoa(rows) + " rows */" + query[end:]
}

// matchingParen returns the index of the parenthesis closing the one at open,
// skipping quoted literals.
func matchingParen(s string, open int) int {
	depth := 0
	inQuote := false
	for i := open; i < len(s); i++ {
		switch c := s[i]; {
		case inQuote:
			if c == '\'' {
				inQuote = false
			}
		case c == '\'':
			inQuote = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
