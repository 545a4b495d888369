package resolve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Selector picks one directory out of several that matched the same query.
// It returns the index into matches.
type Selector interface {
	Select(query string, matches []string) (int, error)
}

// PromptSelector lists the matches with 0-based indices and reads the chosen
// index from a line of input.
type PromptSelector struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPromptSelector returns a selector that prompts on out and reads from in.
// The reader is buffered once so consecutive prompts share input.
func NewPromptSelector(in io.Reader, out io.Writer) *PromptSelector {
	return &PromptSelector{reader: bufio.NewReader(in), out: out}
}

// Select implements Selector.
func (p *PromptSelector) Select(query string, matches []string) (int, error) {
	fmt.Fprintf(p.out, "Multiple matches found for '%s':\n", query)
	for i, m := range matches {
		fmt.Fprintf(p.out, "  %d: %s\n", i, m)
	}
	fmt.Fprint(p.out, "Enter index of folder to use: ")

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading selection: %w", ErrAmbiguousSelection)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 0 || idx >= len(matches) {
		return 0, fmt.Errorf("invalid selection %q: choose 0-%d: %w", strings.TrimSpace(line), len(matches)-1, ErrAmbiguousSelection)
	}
	return idx, nil
}

// FirstMatchSelector always picks the first match in walk order.
type FirstMatchSelector struct{}

// Select implements Selector.
func (FirstMatchSelector) Select(_ string, _ []string) (int, error) {
	return 0, nil
}

// FailSelector refuses to choose, for non-interactive use.
type FailSelector struct{}

// Select implements Selector.
func (FailSelector) Select(query string, matches []string) (int, error) {
	return 0, fmt.Errorf("%d folders match %q (%s): %w", len(matches), query, strings.Join(matches, ", "), ErrAmbiguousSelection)
}
