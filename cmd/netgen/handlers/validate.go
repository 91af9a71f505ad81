package handlers

import (
	"fmt"

	"github.com/imamik/netgen/internal/config"
	"github.com/imamik/netgen/internal/ui"
)

// Validate checks a deployment context without emitting a manifest and
// prints a summary of the resources it would produce.
func Validate(contextPath string, s *config.Settings) error {
	log, flush, err := newLogger(s)
	if err != nil {
		return err
	}
	defer flush()

	path, err := resolveContextPath(contextPath)
	if err != nil {
		return err
	}

	m, genErr := run(log, s, path, "")

	fmt.Fprint(stdout, ui.Summary(path, m, genErr, isTerminal()))

	if genErr != nil {
		return fmt.Errorf("validation failed: %w", genErr)
	}
	return nil
}
