package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langkit/pkg/catalog"
)

func runCmd(a *app) *cobra.Command {
	var (
		format      string
		parallelism int
	)

	cmd := &cobra.Command{
		Use:   "run [topic...]",
		Short: "Run the catalogue, or only the given topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.ReportFormat
			}
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("parallelism") {
				parallelism = a.cfg.Parallelism
			}
			if err := catalog.ValidateParallelism(parallelism); err != nil {
				return err
			}

			checks, err := a.registry.Select(args...)
			if err != nil {
				return err
			}

			runner := catalog.NewRunner(
				catalog.WithLogger(a.log),
				catalog.WithParallelism(parallelism),
			)
			rep, err := runner.Run(cmd.Context(), checks)
			if err != nil {
				return err
			}

			if err := catalog.WriteReport(cmd.OutOrStdout(), rep, f); err != nil {
				return err
			}
			if !rep.OK() {
				return ErrChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "report format: text, json, yaml")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 0, "checks to run at once (0 uses GOMAXPROCS)")
	return cmd
}
