package pointset

import (
	"fmt"
	"strconv"
	"strings"
)

// splitRow splits one line of a matrix file into tokens. An empty delimiter
// means any run of whitespace, matching the loader's historical default.
func splitRow(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, delimiter)
}

// parseFloatRow parses one row of coordinate tokens. Errors carry the
// 1-based line number and column so a bad token in a large file is findable.
func parseFloatRow(tokens []string, lineNo int) ([]float64, error) {
	row := make([]float64, len(tokens))
	for col, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: invalid float %q", lineNo, col+1, tok)
		}
		row[col] = v
	}
	return row, nil
}

// parseIntRow parses one row of index tokens.
func parseIntRow(tokens []string, lineNo int) ([]int, error) {
	row := make([]int, len(tokens))
	for col, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: invalid integer %q", lineNo, col+1, tok)
		}
		row[col] = v
	}
	return row, nil
}
