package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/klimatkalk/klimatkalk/internal/ingest"
	"github.com/klimatkalk/klimatkalk/internal/logging"
	"github.com/klimatkalk/klimatkalk/internal/screening"
)

// NewCompareCmd creates the "compare" subcommand, which estimates several
// scenario files and renders them side by side.
//
// Scenarios are estimated concurrently; the engine is a pure function with
// no shared state, so the only coordination needed is collecting results
// back into argument order.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <scenario.yaml> [scenario.yaml...]",
		Short: "Compare estimates for several building scenarios",
		Example: `  klimatkalk compare base.yaml timber.yaml
  klimatkalk compare scenarios/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCompare(cmd, args)
		},
	}
	return cmd
}

// executeCompare loads and estimates every scenario file, then renders the
// comparison table in argument order.
func executeCompare(cmd *cobra.Command, paths []string) error {
	rows := make([]comparedScenario, len(paths))

	ctx := logging.WithContext(cmd.Context(), logger)
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			sc, err := ingest.LoadScenario(path)
			if err != nil {
				return err
			}
			logging.FromContext(ctx).Debug().
				Str("operation", "compare").
				Str("scenario", sc.Name).
				Msg("estimating scenario")
			inputs, err := sc.Inputs()
			if err != nil {
				return err
			}
			cfg, err := sc.Config()
			if err != nil {
				return err
			}
			rows[i] = comparedScenario{Name: sc.Name, Result: screening.Estimate(inputs, &cfg)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().Int("scenarios", len(rows)).Msg("rendering scenario comparison")

	styles := newRenderStyles(useColor(cmd, os.Stdout))
	renderComparison(cmd.OutOrStdout(), rows, styles)
	return nil
}
