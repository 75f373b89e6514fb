package core

import (
	"fmt"
	"strings"
	"unicode"
)

// labelSeparator splits boundary token lists.
const labelSeparator = ","

// NormalizeLabel trims and upper-cases a token. Identity comparisons between
// labels always happen on normalized values.
func NormalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidLabel reports whether a normalized label satisfies
// letter (letter|digit)*.
func ValidLabel(label string) bool {
	if label == "" {
		return false
	}
	for i, r := range label {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// splitTokens breaks a delimited list into normalized tokens, empty ones included.
func splitTokens(list string) []string {
	raw := strings.Split(list, labelSeparator)
	out := make([]string, len(raw))
	for i, tok := range raw {
		out[i] = NormalizeLabel(tok)
	}

	return out
}

// ParseLabels validates a comma-separated vertex list and returns the distinct
// normalized labels in first-seen order. Empty tokens are skipped; any token
// that violates the grammar fails the whole list.
func ParseLabels(list string) ([]string, error) {
	tokens := splitTokens(list)
	seen := make(map[string]struct{}, len(tokens))
	labels := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		if !ValidLabel(tok) {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedLabel, i, tok)
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		labels = append(labels, tok)
	}

	return labels, nil
}

// resolveTokens maps every token of list to an existing vertex.
// Empty tokens do not resolve.
func (g *Graph) resolveTokens(list string) ([]VertexID, error) {
	tokens := splitTokens(list)
	ids := make([]VertexID, len(tokens))
	for i, tok := range tokens {
		id, ok := g.index[tok]
		if !ok {
			return nil, fmt.Errorf("%w: token %d %q", ErrUnknownVertex, i, tok)
		}
		ids[i] = id
	}

	return ids, nil
}
