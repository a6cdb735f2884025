package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uzbekistan/internal/division"
	"uzbekistan/internal/populate"
)

func newPopulateCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var models []string

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Seed the division database from the bundled fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			entities := make([]division.Entity, 0, len(models))
			for _, raw := range models {
				entity, err := division.ParseEntity(raw)
				if err != nil {
					return err
				}
				entities = append(entities, entity)
			}

			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			rep := populate.WriterReporter{Out: cmd.OutOrStdout()}
			_, err = populate.Run(cmd.Context(), cfg, store, rep, populate.Options{
				Force:    force,
				Entities: entities,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete existing rows before repopulating")
	cmd.Flags().StringSliceVar(&models, "models", nil, "Restrict to specific division levels (region, district, village)")
	return cmd
}
