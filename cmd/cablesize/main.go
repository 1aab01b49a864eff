package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var jsonOutput bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cablesize",
		Short: "Size low-voltage conductors by voltage drop, ampacity and lifecycle cost",
		Long: `cablesize sizes a low-voltage line described in a YAML project file.

Example project file:

  name: Workshop feeder
  material: copper
  line:
    type: three-phase
    length_m: 120
    current_a: 80
    power_factor: 0.9
    source_voltage_v: 400
    circuit: power
  economics:
    years: 20
    hours_per_year: 4000
    cost_per_kwh: 0.15
    window: 4`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of tables")

	rootCmd.AddCommand(sizeCmd())
	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(tokenCmd())
	return rootCmd
}

func sizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size [project.yaml]",
		Short: "Compute the technical section of a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}
}

func optimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize [project.yaml]",
		Short: "Size a line and pick the section with the lowest lifecycle cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [copper|aluminum]",
		Short: "List the standard sections of a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [lines.xlsx]",
		Short: "Size every line of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}
}

func reportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report [project.yaml]",
		Short: "Write a PDF sizing and cost report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], out, time.Now())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "report.pdf", "PDF output path")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the tools API (uses TOKEN_KEY)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd.OutOrStdout(), subject, ttl)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "cli", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default TOKEN_TTL_HOURS)")
	return cmd
}
