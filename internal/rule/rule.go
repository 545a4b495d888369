package rule

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	rulesDir      = "rules"
	ruleExt       = ".md"
	frontMatter   = "---\n"
	rootPattern   = "**/*"
	folderPattern = "/**/*"
)

// Writer writes rules into a project's llm-context state directory.
type Writer struct {
	root     string
	stateDir string
}

// NewWriter returns a Writer for the project at root. stateDir is relative
// to root (".llm-context" by default).
func NewWriter(root, stateDir string) *Writer {
	return &Writer{root: root, stateDir: stateDir}
}

// StateDir returns the absolute path of the llm-context state directory.
func (w *Writer) StateDir() string {
	return filepath.Join(w.root, w.stateDir)
}

// Path returns where the rule called name is written.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.StateDir(), rulesDir, FileName(name))
}

// FileName returns the on-disk file name of the rule called name.
func FileName(name string) string {
	return name + ruleExt
}

// Write renders a rule including every file under folders, overwrites any
// previous rule of the same name, and registers the file in the state
// directory's .gitignore. It returns the rule name to activate.
func (w *Writer) Write(folders []string, name string) (string, error) {
	content, err := Render(folders)
	if err != nil {
		return "", err
	}

	path := w.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating rules directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing rule %s: %w", path, err)
	}

	if err := EnsureIgnored(w.StateDir(), FileName(name)); err != nil {
		return "", err
	}
	return name, nil
}

// Patterns returns one glob per folder, in order. The root folder ("")
// becomes "**/*".
func Patterns(folders []string) []string {
	patterns := make([]string, len(folders))
	for i, f := range folders {
		if f == "" {
			patterns[i] = rootPattern
		} else {
			patterns[i] = f + folderPattern
		}
	}
	return patterns
}

// Render builds the rule file content for folders and checks the assembled
// front matter, header comment included, against the rule schema.
func Render(folders []string) ([]byte, error) {
	body, err := renderBody(Patterns(folders))
	if err != nil {
		return nil, err
	}

	var block bytes.Buffer
	fmt.Fprintf(&block, "# Temporary rule to include all files under %s\n", describe(folders))
	block.Write(body)

	result, err := Validate(block.Bytes())
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid rule: %s", result)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatter)
	buf.Write(block.Bytes())
	buf.WriteString(frontMatter)
	return buf.Bytes(), nil
}

// renderBody encodes the only-include block with every pattern double-quoted.
func renderBody(patterns []string) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range patterns {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: p,
		})
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "only-include"},
			{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: "full_files"},
					seq,
				},
			},
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding rule: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding rule: %w", err)
	}
	return buf.Bytes(), nil
}

// lineBreaks are the characters YAML treats as ending a comment line.
var lineBreaks = strings.NewReplacer("\n", " ", "\r", " ", "\u0085", " ", "\u2028", " ", "\u2029", " ")

func describe(folders []string) string {
	names := make([]string, len(folders))
	for i, f := range folders {
		if f == "" {
			f = "."
		}
		names[i] = "'" + lineBreaks.Replace(f) + "'"
	}
	return strings.Join(names, ", ")
}
