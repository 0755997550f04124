package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/seed"
	"github.com/baechuer/visit-service/internal/stats"
	"github.com/baechuer/visit-service/internal/store"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// seedFlags are shared by every command that generates demo data.
type seedFlags struct {
	seed int64
	tz   string
	now  string
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed (0 = time based)")
	cmd.Flags().StringVar(&f.tz, "tz", "Europe/Paris", "time zone for calendar days")
	cmd.Flags().StringVar(&f.now, "now", "", "generate up to this day (YYYY-MM-DD, default today)")
}

func (f *seedFlags) resolve() (*time.Location, time.Time, error) {
	loc, err := time.LoadLocation(f.tz)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid --tz %q: %w", f.tz, err)
	}
	if f.now == "" {
		return loc, time.Now().In(loc), nil
	}
	d, err := time.ParseInLocation(stats.DateLayout, f.now, loc)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid --now %q: must be YYYY-MM-DD", f.now)
	}
	// End of that day so the whole day can be filled.
	return loc, d.Add(24*time.Hour - time.Second), nil
}

// seededService builds an in-memory service filled with demo data.
func (f *seedFlags) seededService(ctx context.Context) (*visit.Service, error) {
	loc, now, err := f.resolve()
	if err != nil {
		return nil, err
	}
	clock := fixedClock{t: now}
	gen := seed.NewGenerator(f.seed, loc)
	svc := visit.New(store.NewEventStore(), store.NewCityDirectory(), clock, nil, nil, loc, 0, 0)

	if err := seed.NewLoader(svc, gen, gen, clock, true).Run(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
