package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/niber/internal/config"
	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/host"
	"github.com/vango-dev/niber/pkg/metrics"
	"github.com/vango-dev/niber/pkg/niber"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╗╔┬┌┐ ┌─┐┬─┐
  ║║║│├┴┐├┤ ├┬┘
  ╝╚╝┴└─┘└─┘┴└─
`

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		errors.DisableColors()
	}

	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "niber",
		Short: "Render and inspect niber component trees",
		Long: `niber renders description trees through the niber runtime.

Tree files are JSON or YAML documents describing host elements and
references to built-in components (counter, toggle). The CLI can
render them to HTML, replay click events against them, and serve
them behind the HTTP inspector.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: niber.json or niber.toml in the project root)")

	rootCmd.AddCommand(
		renderCmd(&configPath),
		serveCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config at path, or from the project root when path
// is empty. A project without a config file gets the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadFromWorkingDir()
}

// session is a runtime wired to a host container from config.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	runtime   *niber.Runtime
	container *host.Container
}

func newSession(cfg *config.Config, logOut io.Writer) *session {
	logger := cfg.Logger(logOut)
	registry := prometheus.NewRegistry()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(
			metrics.WithRegistry(registry),
			metrics.WithNamespace(cfg.Metrics.Namespace),
		)
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		runtime: niber.New(
			niber.WithLogger(logger),
			niber.WithMetrics(m),
			niber.WithTracer(otel.Tracer(cfg.Tracing.TracerName)),
		),
		container: host.NewContainer(host.WithLogger(logger)),
	}
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
