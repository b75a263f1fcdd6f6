// File: codec.go
// Role: chromosome text form "[(r,o),(r,o),...]", used as cache key and in reports.

package ga

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGenes renders genes as "[(r,o),(r,o)]" with no spaces.
func FormatGenes(genes []Gene) string {
	var sb strings.Builder
	sb.Grow(len(genes)*8 + 2)
	sb.WriteByte('[')
	for i, g := range genes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(g.Root))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(g.Offset))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')

	return sb.String()
}

// ParseGenes is the inverse of FormatGenes. Surrounding whitespace is
// tolerated; anything else out of shape, including negative numbers, is
// ErrBadChromosomeText.
func ParseGenes(text string) ([]Gene, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: %q", ErrBadChromosomeText, text)
	}
	body := s[1 : len(s)-1]
	if body == "" {
		return []Gene{}, nil
	}
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return nil, fmt.Errorf("%w: %q", ErrBadChromosomeText, text)
	}

	parts := strings.Split(body[1:len(body)-1], "),(")
	genes := make([]Gene, len(parts))
	for i, part := range parts {
		fields := strings.Split(part, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: gene %d %q", ErrBadChromosomeText, i, part)
		}
		root, err := parseNonNegative(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: gene %d root: %v", ErrBadChromosomeText, i, err)
		}
		offset, err := parseNonNegative(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: gene %d offset: %v", ErrBadChromosomeText, i, err)
		}
		genes[i] = Gene{Root: root, Offset: offset}
	}

	return genes, nil
}

func parseNonNegative(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || s[0] == '+' {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}

	return v, nil
}
