package resolve

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPromptSelector_ListsMatches(t *testing.T) {
	var out bytes.Buffer
	sel := NewPromptSelector(strings.NewReader("0\n"), &out)

	idx, err := sel.Select("models", []string{"a/models", "b/Models"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("Select() = %d, want 0", idx)
	}

	text := out.String()
	for _, want := range []string{
		"Multiple matches found for 'models':",
		"  0: a/models",
		"  1: b/Models",
		"Enter index of folder to use:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt output missing %q, got:\n%s", want, text)
		}
	}
}

func TestPromptSelector_SharesInputAcrossPrompts(t *testing.T) {
	sel := NewPromptSelector(strings.NewReader("1\n0\n"), &bytes.Buffer{})
	matches := []string{"x", "y"}

	first, err := sel.Select("q", matches)
	if err != nil {
		t.Fatalf("first Select() error = %v", err)
	}
	second, err := sel.Select("q", matches)
	if err != nil {
		t.Fatalf("second Select() error = %v", err)
	}
	if first != 1 || second != 0 {
		t.Errorf("selections = %d, %d; want 1, 0", first, second)
	}
}

func TestPromptSelector_AcceptsFinalLineWithoutNewline(t *testing.T) {
	sel := NewPromptSelector(strings.NewReader(" 1 "), &bytes.Buffer{})

	idx, err := sel.Select("q", []string{"x", "y"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("Select() = %d, want 1", idx)
	}
}

func TestPromptSelector_Invalid(t *testing.T) {
	for _, input := range []string{"-1\n", "2\n", "one\n", "\n"} {
		sel := NewPromptSelector(strings.NewReader(input), &bytes.Buffer{})
		_, err := sel.Select("q", []string{"x", "y"})
		if !errors.Is(err, ErrAmbiguousSelection) {
			t.Errorf("input %q: error = %v, want ErrAmbiguousSelection", input, err)
		}
	}
}

func TestFailSelector_NamesMatches(t *testing.T) {
	_, err := FailSelector{}.Select("common", []string{"a/common", "b/common"})
	if !errors.Is(err, ErrAmbiguousSelection) {
		t.Fatalf("error = %v, want ErrAmbiguousSelection", err)
	}
	if !strings.Contains(err.Error(), "a/common, b/common") {
		t.Errorf("error %q should list the matches", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{".", ""},
		{"./", ""},
		{"src", "src"},
		{"./src/", "src"},
		{"src/pkg//", "src/pkg"},
		{".github", ".github"},
		{"./.config/app", ".config/app"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
