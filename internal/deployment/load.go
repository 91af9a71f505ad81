package deployment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// DefaultContextFilename is the context file looked up when no path is given.
const DefaultContextFilename = "netgen.yaml"

// LoadFile reads a context from a YAML file.
func LoadFile(path string) (*Context, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}

	return LoadBytes(data)
}

// LoadBytes parses a YAML context document.
func LoadBytes(data []byte) (*Context, error) {
	var ctx Context
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &ctx, nil
}

// FromMaps builds a context from the generic env and properties maps an
// embedding engine passes to templates. Scalars are weakly typed so a
// numeric region or name still decodes into a string.
func FromMaps(env, properties map[string]any) (*Context, error) {
	var ctx Context

	if err := decode(env, &ctx.Env); err != nil {
		return nil, fmt.Errorf("failed to decode env: %w", err)
	}
	if err := decode(properties, &ctx.Properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	return &ctx, nil
}

func decode(input map[string]any, out any) error {
	if input == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// FindContextFile searches for the default context file.
// It checks the current directory, then walks up towards the root.
func FindContextFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultContextFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("context file %s not found", DefaultContextFilename)
}
