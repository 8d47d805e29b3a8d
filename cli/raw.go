package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cyclostat/cyclostat/render"
	"github.com/cyclostat/cyclostat/stats"
)

func newRawCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var (
		city   string
		month  string
		day    string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Print raw trip rows as a table",
		Example: `  cyclostat raw --city chicago --limit 10
  cyclostat raw --city washington --month march --day friday --offset 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			view, filter, loadReport, err := loadFiltered(cfg, city, month, day)
			if err != nil {
				return err
			}

			if offset < 0 {
				offset = 0
			}
			end := view.Len()
			if limit > 0 && offset+limit < end {
				end = offset + limit
			}
			page := view.Slice(offset, end)

			render.TripsTable(page, loadReport.HasGender, loadReport.HasBirthYear).Write(out)
			fmt.Fprintf(out, "\n%s of %s trips (%s)\n",
				stats.FormatInt(page.Len()), stats.FormatInt(view.Len()), filter.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to show (required)")
	cmd.Flags().StringVar(&month, "month", "all", "month filter: january-june or all")
	cmd.Flags().StringVar(&day, "day", "all", "weekday filter: a day name or all")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows to print (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip before printing")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
