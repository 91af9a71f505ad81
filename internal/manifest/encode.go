package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/imamik/netgen/internal/network"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: %s, %s)", s, FormatYAML, FormatJSON)
	}
}

// Encode writes m to w. Field names come from the json tags of the
// network types in both formats.
func Encode(w io.Writer, m *network.Manifest, f Format) error {
	if m == nil {
		return fmt.Errorf("nothing to encode: manifest is nil")
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML, "":
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
