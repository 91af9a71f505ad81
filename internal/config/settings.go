package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/imamik/netgen/internal/manifest"
)

// EnvPrefix is prepended to every settings key when read from the environment,
// e.g. NETGEN_LOG_LEVEL.
const EnvPrefix = "NETGEN"

// Settings keys. They double as CLI flag names.
const (
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyFormat      = "format"
	KeyStrictCIDR  = "strict-cidr"
	KeyMetricsFile = "metrics-file"
)

// Log levels understood by the CLI logger.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
)

// Log encodings understood by the CLI logger.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Settings holds the CLI's runtime settings.
// Precedence: flags, then NETGEN_* environment, then settings file, then defaults.
type Settings struct {
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	Format      string `mapstructure:"format"`
	StrictCIDR  bool   `mapstructure:"strict-cidr"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, LogLevelInfo)
	v.SetDefault(KeyLogFormat, LogFormatConsole)
	v.SetDefault(KeyFormat, string(manifest.FormatYAML))
	v.SetDefault(KeyStrictCIDR, false)
	v.SetDefault(KeyMetricsFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds every flag in fs that corresponds to a settings key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyFormat, KeyStrictCIDR, KeyMetricsFile} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// LoadSettings resolves settings from v. If path is set, the settings file
// is read first; a missing file is an error only when a path was given.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &s, nil
}

// Validate checks the settings for unsupported values.
func (s *Settings) Validate() error {
	var errs []error

	switch strings.ToLower(s.LogLevel) {
	case LogLevelDebug, LogLevelInfo, LogLevelError:
	default:
		errs = append(errs, fmt.Errorf("%s %q: must be one of %s, %s, %s",
			KeyLogLevel, s.LogLevel, LogLevelDebug, LogLevelInfo, LogLevelError))
	}

	switch strings.ToLower(s.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%s %q: must be one of %s, %s",
			KeyLogFormat, s.LogFormat, LogFormatConsole, LogFormatJSON))
	}

	if _, err := manifest.ParseFormat(s.Format); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// OutputFormat returns the parsed manifest format.
func (s *Settings) OutputFormat() manifest.Format {
	f, err := manifest.ParseFormat(s.Format)
	if err != nil {
		return manifest.FormatYAML
	}
	return f
}
