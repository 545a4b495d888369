package rule

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const ignoreFile = ".gitignore"

// EnsureIgnored registers a rule file in the llm-context state directory's
// .gitignore so generated rules never show up as project changes. The line
// is written once; later calls leave the file untouched.
func EnsureIgnored(stateDir, filename string) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", stateDir, err)
	}
	ignorePath := filepath.Join(stateDir, ignoreFile)

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", ignorePath, err)
	}
	if isListed(string(content), filename) {
		return nil
	}

	entry := filename + "\n"
	// A hand-edited file may lack its final newline.
	if len(content) > 0 && content[len(content)-1] != '\n' {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", ignorePath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("writing to %s: %w", ignorePath, err)
	}
	return nil
}

func isListed(content, filename string) bool {
	return slices.ContainsFunc(strings.Split(content, "\n"), func(line string) bool {
		return strings.TrimSpace(line) == filename
	})
}
