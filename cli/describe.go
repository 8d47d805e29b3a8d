package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cyclostat/cyclostat/dataset"
	"github.com/cyclostat/cyclostat/render"
	"github.com/cyclostat/cyclostat/stats"
)

func newDescribeCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var (
		city   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Structural overview of a city trip log",
		Example: `  cyclostat describe --city chicago
  cyclostat describe --city washington --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			path, err := cfg.CityFile(city)
			if err != nil {
				return err
			}

			trips, loadReport, err := dataset.LoadFile(path)
			if err != nil {
				return err
			}

			summary := stats.Summarize(dataset.NewView(trips))

			switch format {
			case "text":
				render.WriteSummary(out, city, summary)
				if loadReport.Dropped > 0 {
					fmt.Fprintf(out, "Rows dropped at load: %s\n", stats.FormatInt(loadReport.Dropped))
				}
			case "json", "pretty":
				return writeJSON(out, summary, format == "pretty")
			default:
				return fmt.Errorf("unknown format %q: expected text, json, or pretty", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to describe (required)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, or pretty")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
