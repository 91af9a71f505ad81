// Package ui renders human-readable validation summaries for the CLI.
package ui
