// Package rule writes the temporary llm-context rule that limits context
// extraction to the resolved folders.
//
// The rule lives at <root>/<state-dir>/rules/<name>.md and is a YAML front
// matter block with one "<folder>/**/*" glob per folder under
// only-include.full_files. It is overwritten on every run, and its file name
// is registered once in <root>/<state-dir>/.gitignore so the generated file
// never shows up as a change in the project.
package rule
