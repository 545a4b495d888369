// Package config loads user-level settings from ~/.lc-dir/config.yaml and
// LCDIR_* environment variables: the temporary rule name, the llm-context
// state directory, the project root marker, and how ambiguous folder names
// are resolved.
package config
