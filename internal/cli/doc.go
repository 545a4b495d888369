// Package cli defines the Cobra root command for lc-dir. The command takes
// zero or more folder targets, resolves them inside the current project,
// writes a temporary llm-context rule for them, and hands over to the
// llm-context CLI. Business logic lives in the internal packages; this
// package only wires them together and handles I/O.
package cli
