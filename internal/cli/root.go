package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/diagram"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the diagram CLI and returns an error if any command
// fails.
//
// The root command wires up the render and size subcommands and
// configures logging from the --verbose flag. In verbose mode the
// library's own debug logging is enabled too, routed through the same
// charmbracelet logger via its slog handler.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "diagram",
		Short:        "diagram renders declarative diagram definitions",
		Long:         `diagram loads TOML diagram definitions and renders them to PNG or SVG files using a small combinator-based layout engine.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				diagram.SetLogger(slog.New(logger))
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("diagram %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSizeCmd())

	return root.ExecuteContext(context.Background())
}
