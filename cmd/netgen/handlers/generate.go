package handlers

import (
	"bytes"
	"fmt"

	"github.com/imamik/netgen/internal/config"
	"github.com/imamik/netgen/internal/manifest"
)

// GenerateOptions selects the input and output of a generation.
type GenerateOptions struct {
	// ContextPath is the deployment context file. Empty means auto-detect.
	ContextPath string
	// OutputPath receives the manifest. Empty means stdout.
	OutputPath string
	// NetworkName overrides env.name from the context file.
	NetworkName string
}

// Generate renders the network manifest for a deployment context.
//
// The manifest is written to opts.OutputPath, or stdout when unset, in the
// format chosen by the settings. Nothing is written if validation fails.
func Generate(opts GenerateOptions, s *config.Settings) error {
	log, flush, err := newLogger(s)
	if err != nil {
		return err
	}
	defer flush()

	path, err := resolveContextPath(opts.ContextPath)
	if err != nil {
		return err
	}

	m, err := run(log, s, path, opts.NetworkName)
	if err != nil {
		return fmt.Errorf("failed to generate manifest from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := manifest.Encode(&buf, m, s.OutputFormat()); err != nil {
		return err
	}

	if opts.OutputPath == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if err := writeFile(opts.OutputPath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	log.Info("Manifest written", "path", opts.OutputPath, "resources", len(m.Resources))
	return nil
}
