package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/klimatkalk/klimatkalk/internal/config"
	"github.com/klimatkalk/klimatkalk/internal/ingest"
	"github.com/klimatkalk/klimatkalk/internal/screening"
)

// estimateParams holds the flag values for the estimate command.
type estimateParams struct {
	scenarioPath string
	output       string

	boundary        string
	formFactor      float64
	windowRatio     float64
	floors          int
	buildingHeightM float64

	system      string
	method      string
	heavyDesign bool

	improved      bool
	applicability float64

	basement     bool
	garage       bool
	parkingRatio float64
	atempToBTA   float64

	timberOverride  float64
	windowWallRatio float64
}

// estimateEnvelope is the JSON output shape: the result plus enough
// provenance to trace a run.
type estimateEnvelope struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Scenario    string                `json:"scenario,omitempty"`
	Inputs      screening.ModelInputs `json:"inputs"`
	Result      screening.ModelResult `json:"result"`
}

// NewEstimateCmd creates the "estimate" subcommand.
//
// Inputs come either from a YAML scenario file (--scenario) or directly
// from flags. Flag defaults match the model's reference assumptions, so a
// bare "klimatkalk estimate" reproduces the early-scope reference building.
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the embodied carbon of one building",
		Long: `Estimate the A1-A5 embodied-carbon footprint of one building and render
the per-category breakdown, the total, and the comparison against the
reference threshold of 375 kg CO2e/m² BTA.`,
		Example: estimateCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.scenarioPath, "scenario", "", "path to a YAML scenario file (overrides the input flags)")
	cmd.Flags().StringVar(&params.output, "output", "", "output format: table or json (default from configuration)")

	cmd.Flags().StringVar(&params.boundary, "boundary", string(screening.BoundaryEarly),
		"system boundary: early-scope or extended-scope")
	cmd.Flags().Float64Var(&params.formFactor, "form-factor", 0.45, "envelope-to-floor-area ratio (Aom/BTA)")
	cmd.Flags().Float64Var(&params.windowRatio, "window-ratio", 0.20, "glazed share of the facade (0-1)")
	cmd.Flags().IntVar(&params.floors, "floors", 6, "floors above ground")
	cmd.Flags().Float64Var(&params.buildingHeightM, "height", 0, "building height in meters (0 = unknown)")

	cmd.Flags().StringVar(&params.system, "system", string(screening.SystemConcrete),
		"structural system: concrete, timber or steel")
	cmd.Flags().StringVar(&params.method, "method", screening.MethodPrefabConcrete,
		"construction method (unknown methods count as factor 1.0)")
	cmd.Flags().BoolVar(&params.heavyDesign, "heavy", false, "heavy structural design, e.g. massive shell walls")

	cmd.Flags().BoolVar(&params.improved, "improved", false, "climate-improved material choices")
	cmd.Flags().Float64Var(&params.applicability, "applicability", 1.0, "how much of the improvement applies (0-1)")

	cmd.Flags().BoolVar(&params.basement, "basement", false, "basement without garage")
	cmd.Flags().BoolVar(&params.garage, "garage", false, "underground garage")
	cmd.Flags().Float64Var(&params.parkingRatio, "parking-ratio", 0.5, "parking ratio relative to the 0.5 reference")
	cmd.Flags().Float64Var(&params.atempToBTA, "atemp-bta", 0.90, "heated-to-gross floor area ratio")

	cmd.Flags().Float64Var(&params.timberOverride, "timber", 0,
		"timber mass override in ton/m² BTA (only applied when set)")
	cmd.Flags().Float64Var(&params.windowWallRatio, "window-wall-ratio", 4.0,
		"window-to-wall carbon intensity ratio (model coefficient override)")

	return cmd
}

const estimateCmdExample = `  # Reference building, early scope
  klimatkalk estimate

  # Timber frame, extended scope, with garage
  klimatkalk estimate --boundary extended-scope --system timber --garage

  # From a scenario file, as JSON
  klimatkalk estimate --scenario building.yaml --output json`

// executeEstimate resolves inputs and configuration, runs the engine once,
// and renders the result in the requested format.
func executeEstimate(cmd *cobra.Command, params estimateParams) error {
	inputs, cfg, name, err := resolveEstimate(cmd, params)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("operation", "estimate").
		Str("scenario", name).
		Str("boundary", string(inputs.SystemBoundary)).
		Str("system", string(inputs.StructuralSystem)).
		Msg("running screening estimate")

	result := screening.Estimate(inputs, &cfg)

	format := params.output
	if format == "" {
		format = appConfig.Output.DefaultFormat
	}

	switch format {
	case config.OutputJSON:
		envelope := estimateEnvelope{
			RunID:       ulid.Make().String(),
			GeneratedAt: time.Now().UTC(),
			Scenario:    name,
			Inputs:      inputs,
			Result:      result,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(envelope)
	case config.OutputTable:
		styles := newRenderStyles(useColor(cmd, os.Stdout))
		renderResult(cmd.OutOrStdout(), name, result, styles)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)",
			format, config.OutputTable, config.OutputJSON)
	}
}

// resolveEstimate turns the command invocation into engine inputs and a
// model configuration, from a scenario file when given, otherwise from the
// flags.
func resolveEstimate(
	cmd *cobra.Command,
	params estimateParams,
) (screening.ModelInputs, screening.ModelConfig, string, error) {
	if params.scenarioPath != "" {
		sc, err := ingest.LoadScenario(params.scenarioPath)
		if err != nil {
			return screening.ModelInputs{}, screening.ModelConfig{}, "", err
		}
		inputs, err := sc.Inputs()
		if err != nil {
			return screening.ModelInputs{}, screening.ModelConfig{}, "", err
		}
		cfg, err := sc.Config()
		if err != nil {
			return screening.ModelInputs{}, screening.ModelConfig{}, "", err
		}
		return inputs, cfg, sc.Name, nil
	}

	boundary, err := screening.ParseBoundary(params.boundary)
	if err != nil {
		return screening.ModelInputs{}, screening.ModelConfig{}, "", err
	}
	system, err := screening.ParseStructuralSystem(params.system)
	if err != nil {
		return screening.ModelInputs{}, screening.ModelConfig{}, "", err
	}

	inputs := screening.ModelInputs{
		SystemBoundary:               boundary,
		FormFactor:                   params.formFactor,
		WindowRatio:                  params.windowRatio,
		Floors:                       params.floors,
		BuildingHeightM:              params.buildingHeightM,
		StructuralSystem:             system,
		Method:                       params.method,
		HeavyStructuralDesign:        params.heavyDesign,
		ClimateImprovedMaterials:     params.improved,
		ClimateImprovedApplicability: params.applicability,
		Basement:                     params.basement,
		UndergroundGarage:            params.garage,
		ParkingRatio:                 params.parkingRatio,
		AtempToBTA:                   params.atempToBTA,
	}
	if cmd.Flags().Changed("timber") {
		timber := params.timberOverride
		inputs.TimberTPerM2Override = &timber
	}

	cfg := screening.DefaultConfig()
	if cmd.Flags().Changed("window-wall-ratio") {
		cfg = cfg.WithWindowToWallRatio(params.windowWallRatio)
	}
	if err := cfg.Validate(); err != nil {
		return screening.ModelInputs{}, screening.ModelConfig{}, "", err
	}
	return inputs, cfg, "", nil
}
