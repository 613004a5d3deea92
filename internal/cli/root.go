// Package cli wires the cobra command tree for the klimatkalk CLI.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klimatkalk/klimatkalk/internal/config"
	"github.com/klimatkalk/klimatkalk/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// appConfig holds the loaded application configuration for the lifetime of
// one CLI invocation.
var appConfig = config.Default() //nolint:gochecknoglobals // Set once in PersistentPreRunE

// NewRootCmd creates the root cobra command for the klimatkalk CLI.
// It wires up logging and the estimate, compare and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "klimatkalk",
		Short: "Embodied-carbon screening for multi-family buildings",
		Long: `klimatkalk estimates the embodied-carbon footprint (A1-A5, kg CO2e/m² BTA)
of a multi-family residential building during early design, using a
parametric screening model with adjustable reference coefficients.

This is a fast, transparent approximation for designers; it is not a
certified climate declaration and does not replace a project LCA.`,
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", config.DefaultPath(), "path to the application config file")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.AddCommand(NewEstimateCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate from a scenario file
  klimatkalk estimate --scenario building.yaml

  # Estimate directly from flags
  klimatkalk estimate --boundary early-scope --form-factor 0.45 --floors 6

  # Compare several scenarios side by side
  klimatkalk compare base.yaml timber.yaml garage.yaml

  # Inspect the model's reference coefficients
  klimatkalk config show`

// setupLogging loads the application config and initializes the package
// logger, honoring the --debug flag.
func setupLogging(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	appConfig = cfg

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
	}

	root := logging.New(logCfg)
	logger = logging.ComponentLogger(root, "cli")
	return nil
}

// useColor reports whether output destined for f should be styled.
func useColor(cmd *cobra.Command, f *os.File) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(f)
}
