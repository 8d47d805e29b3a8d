package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cyclostat/cyclostat/render"
	"github.com/cyclostat/cyclostat/stats"
)

func newStatsCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var (
		city         string
		month        string
		day          string
		dropOutliers string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "One-shot statistics report for a city",
		Example: `  cyclostat stats --city chicago
  cyclostat stats --city "new york city" --month june --day monday
  cyclostat stats --city washington --drop-outliers=zscore --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			view, filter, _, err := loadFiltered(cfg, city, month, day)
			if err != nil {
				return err
			}

			if dropOutliers != "" {
				method, err := stats.ParseOutlierMethod(dropOutliers)
				if err != nil {
					return err
				}
				var removed int
				view, removed = stats.RemoveOutliers(view, method)
				if removed > 0 && format == "text" {
					fmt.Fprintf(out, "Removed %s duration outliers (%s).\n", stats.FormatInt(removed), method)
				}
			}

			report := stats.Describe(view)
			report.City = city
			report.Filter = filter.Label()

			switch format {
			case "text":
				render.WriteReport(out, report)
			case "json", "pretty":
				return writeJSON(out, report, format == "pretty")
			default:
				return fmt.Errorf("unknown format %q: expected text, json, or pretty", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to analyze (required)")
	cmd.Flags().StringVar(&month, "month", "all", "month filter: january-june or all")
	cmd.Flags().StringVar(&day, "day", "all", "weekday filter: a day name or all")
	cmd.Flags().StringVar(&dropOutliers, "drop-outliers", "", "drop duration outliers: iqr or zscore")
	cmd.Flags().Lookup("drop-outliers").NoOptDefVal = string(stats.OutlierIQR)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, or pretty")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
