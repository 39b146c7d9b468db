package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/infrastructure/scenario"
)

var (
	runParallel int
	runJSON     bool
)

var errScenariosFailed = errors.New("some scenarios failed")

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenario files against fresh sessions",
	Long: `Replay each scenario file in its own session and check every expectation.

A scenario is a list of steps. Each step performs one action (open, close,
back, reset) and may assert the error it returns and the resulting state:

  name: shop over bag
  steps:
    - open: main
    - open: bag
    - open: shop
      args: {tab: potions}
      expect:
        shown: [shop]
        stack: [bag, shop]
    - close: bag
      error: stack_order

Scenarios run concurrently, each in an independent session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runParallel, "parallel", "p", runtime.NumCPU(), "maximum scenarios run at once")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output results as JSON")
}

// resultJSON is the JSON shape of one scenario result.
type resultJSON struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Passed   bool     `json:"passed"`
	Steps    int      `json:"steps"`
	Failures []string `json:"failures,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runScenarios(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.ServeMetrics()

	scenarios := make([]*scenario.Scenario, 0, len(args))
	for _, path := range args {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	results, err := scenario.RunAll(app.Ctx(), scenarios, app.ScenarioSessions(), runParallel)
	if err != nil {
		app.Logger().Warn().Err(err).Msg("scenario run incomplete")
	}

	if runJSON {
		if err := writeResultsJSON(cmd, results); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewScenarioRenderer(app.Theme).RenderSummary(results))
	}

	for _, res := range results {
		if !res.Passed() {
			return errScenariosFailed
		}
	}
	return nil
}

func writeResultsJSON(cmd *cobra.Command, results []scenario.Result) error {
	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		r := resultJSON{
			Name:   res.Name,
			Path:   res.Path,
			Passed: res.Passed(),
			Steps:  res.Steps,
		}
		for _, f := range res.Failures {
			r.Failures = append(r.Failures, f.String())
		}
		if res.Err != nil {
			r.Error = res.Err.Error()
		}
		out = append(out, r)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
