package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/imamik/netgen/internal/config"
	"github.com/imamik/netgen/internal/deployment"
	"github.com/imamik/netgen/internal/metrics"
	"github.com/imamik/netgen/internal/network"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadContextFile loads a deployment context from file.
	loadContextFile = deployment.LoadFile

	// findContextFile locates the default context file.
	findContextFile = deployment.FindContextFile

	// writeFile writes data to a file.
	writeFile = os.WriteFile

	// stdout receives manifests and summaries.
	stdout io.Writer = os.Stdout

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// newLogger builds the CLI logger.
	newLogger = buildLogger
)

// buildLogger returns a zap-backed logr.Logger writing to stderr.
// V(1) messages are only emitted at debug level.
func buildLogger(s *config.Settings) (logr.Logger, func(), error) {
	var zc zap.Config
	if strings.EqualFold(s.LogFormat, config.LogFormatJSON) {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}

	switch strings.ToLower(s.LogLevel) {
	case config.LogLevelDebug:
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case config.LogLevelError:
		zc.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("failed to build logger: %w", err)
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

// resolveContextPath returns path, or the discovered default context file.
func resolveContextPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	found, err := findContextFile()
	if err != nil {
		return "", fmt.Errorf("no context file found: %w (pass one with --context)", err)
	}
	return found, nil
}

// run loads the context at path and renders it. Metrics are written when
// configured, whether or not generation succeeded.
func run(log logr.Logger, s *config.Settings, path, networkName string) (*network.Manifest, error) {
	ctx, err := loadContextFile(path)
	if err != nil {
		return nil, err
	}
	if networkName != "" {
		ctx = ctx.WithNetworkName(networkName)
	}

	log.V(1).Info("Loaded deployment context",
		"path", path,
		"network", ctx.Env.Name,
		"project", ctx.Env.Project,
		"deployment", ctx.Env.Deployment,
		"subnetworks", len(ctx.Properties.Subnetworks))

	recorder := metrics.NewRecorder()
	opts := []network.Option{
		network.WithLogger(log.WithName("generator")),
		network.WithRecorder(recorder),
	}
	if s.StrictCIDR {
		opts = append(opts, network.WithStrictCIDR())
	}

	m, genErr := network.NewGenerator(opts...).Generate(ctx)

	if s.MetricsFile != "" {
		if err := recorder.WriteTextfile(s.MetricsFile); err != nil {
			log.Error(err, "Failed to write metrics", "path", s.MetricsFile)
		}
	}

	return m, genErr
}
