// Package runner drives the external llm-context CLI. It verifies that the
// three commands lc-dir depends on are installed, then runs them in order
// from the project root: activate the rule, select files per the rule, and
// build the context onto the clipboard.
package runner
