package refset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadExpression parses a two column table of gene label and expression
// level, separated by a tab or comma. Blank lines and #-comments are
// skipped
func ReadExpression(r io.Reader) (map[string]float64, error) {
	out := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == '\t' || r == ','
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed expression table at line %d", line)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed expression level at line %d: %v", line, err)
		}
		out[strings.TrimSpace(fields[0])] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
