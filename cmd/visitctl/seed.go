package main

import (
	"github.com/spf13/cobra"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
)

type seedSummary struct {
	Cities int    `json:"cities"`
	Events int    `json:"events"`
	First  string `json:"first,omitempty"`
	Last   string `json:"last,omitempty"`
}

func seedCommand() *cobra.Command {
	var (
		flags  seedFlags
		events bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "generate demo cities and events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := flags.seededService(ctx)
			if err != nil {
				return err
			}

			if events {
				out := make([]dto.EventResp, 0)
				for offset := 0; ; offset += visit.MaxListCount {
					page, _ := svc.ListEvents(ctx, offset, visit.MaxListCount)
					if len(page) == 0 {
						break
					}
					for _, e := range page {
						c, _ := svc.City(ctx, e.CityID)
						out = append(out, dto.ToEventResp(e, c, svc.Location()))
					}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			newest, total := svc.ListEvents(ctx, 0, 1)
			sum := seedSummary{Cities: len(svc.Cities(ctx)), Events: total}
			if total > 0 {
				oldest, _ := svc.ListEvents(ctx, total-1, 1)
				sum.First = domain.FormatDisplayDate(oldest[0].Date, svc.Location())
				sum.Last = domain.FormatDisplayDate(newest[0].Date, svc.Location())
			}
			return writeJSON(cmd.OutOrStdout(), sum)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&events, "events", false, "print every event instead of a summary")
	return cmd
}
