package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baechuer/visit-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/visit-service/internal/seed"
)

func citiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "manage the city reference table",
	}
	cmd.AddCommand(citiesImportCommand())
	return cmd
}

// citiesImportCommand provisions the Postgres table read by CITY_DATABASE_URL.
func citiesImportCommand() *cobra.Command {
	var dbURL string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "write the demo city directory to Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				return errors.New("missing --db")
			}
			ctx := cmd.Context()
			db, err := postgres.Open(ctx, dbURL)
			if err != nil {
				return err
			}
			defer db.Close()

			cities := seed.DemoCities(nil)
			if err := postgres.New(db).ReplaceCities(ctx, cities); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d cities\n", len(cities))
			return err
		},
	}
	cmd.Flags().StringVar(&dbURL, "db", "", "postgres URL")
	return cmd
}
