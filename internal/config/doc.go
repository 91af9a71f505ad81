// Package config resolves the CLI's runtime settings.
//
// Settings come from command-line flags, NETGEN_* environment variables and
// an optional settings file, in that order of precedence. The generation
// library itself never reads settings; the CLI translates them into
// generator options.
package config
