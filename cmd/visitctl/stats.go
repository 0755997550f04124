package main

import (
	"github.com/spf13/cobra"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
)

func statsCommand() *cobra.Command {
	var (
		flags seedFlags
		q     visit.RangeQuery
		limit int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "generate demo data and print the dashboard for a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := flags.seededService(ctx)
			if err != nil {
				return err
			}
			if q.From != "" || q.To != "" {
				q.Period = ""
			}
			r, err := svc.ResolveRange(q)
			if err != nil {
				return err
			}
			d, err := svc.Dashboard(ctx, r, limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToDashboardResp(d))
		},
	}
	flags.register(cmd)
	f := cmd.Flags()
	f.StringVar(&q.Period, "period", "month", "year | month | last-days (ignored with --from/--to)")
	f.IntVar(&q.Year, "year", 0, "year for --period year|month (default current)")
	f.IntVar(&q.Month, "month", 0, "month for --period month (default current)")
	f.IntVar(&q.Days, "days", 7, "window for --period last-days")
	f.StringVar(&q.Anchor, "anchor", "", "last day for --period last-days (YYYY-MM-DD, default today)")
	f.StringVar(&q.From, "from", "", "first day (YYYY-MM-DD)")
	f.StringVar(&q.To, "to", "", "last day (YYYY-MM-DD)")
	f.IntVar(&limit, "limit", 5, "number of top cities")
	return cmd
}
