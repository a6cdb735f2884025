package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
	"uzbekistan/internal/geodb"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored divisions",
	}

	listCmd.AddCommand(newListRegionsCommand(ctx))
	listCmd.AddCommand(newListDistrictsCommand(ctx))
	listCmd.AddCommand(newListVillagesCommand(ctx))

	return listCmd
}

func newListRegionsCommand(ctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := config.CheckModelEnabled(cfg, division.EntityRegion); err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			regions, err := store.ListRegions(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(regions))
			for _, region := range regions {
				if name != "" && !region.MatchesName(name) {
					continue
				}
				rows = append(rows, []string{
					strconv.FormatInt(region.ID, 10),
					region.NameUz,
					region.NameOz,
					region.NameRu,
					region.NameEn,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name (uz)", "Name (oz)", "Name (ru)", "Name (en)"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by name in any script")
	return cmd
}

func newListDistrictsCommand(ctx *commandContext) *cobra.Command {
	var name string
	var regionID int64

	cmd := &cobra.Command{
		Use:   "districts",
		Short: "List districts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := config.CheckModelEnabled(cfg, division.EntityDistrict); err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			districts, err := store.ListDistricts(cmd.Context(), geodb.DistrictFilter{RegionID: regionID})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(districts))
			for _, district := range districts {
				if name != "" && !district.MatchesName(name) {
					continue
				}
				rows = append(rows, []string{
					strconv.FormatInt(district.ID, 10),
					district.NameUz,
					district.NameOz,
					district.NameRu,
					district.NameEn,
					strconv.FormatInt(district.RegionID, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name (uz)", "Name (oz)", "Name (ru)", "Name (en)", "Region"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by name in any script")
	cmd.Flags().Int64Var(&regionID, "region-id", 0, "Restrict to one region")
	return cmd
}

func newListVillagesCommand(ctx *commandContext) *cobra.Command {
	var name string
	var districtID int64

	cmd := &cobra.Command{
		Use:   "villages",
		Short: "List villages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := config.CheckModelEnabled(cfg, division.EntityVillage); err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			villages, err := store.ListVillages(cmd.Context(), geodb.VillageFilter{DistrictID: districtID})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(villages))
			for _, village := range villages {
				if name != "" && !village.MatchesName(name) {
					continue
				}
				rows = append(rows, []string{
					strconv.FormatInt(village.ID, 10),
					village.NameUz,
					village.NameOz,
					village.NameRu,
					strconv.FormatInt(village.DistrictID, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name (uz)", "Name (oz)", "Name (ru)", "District"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by name in any script")
	cmd.Flags().Int64Var(&districtID, "district-id", 0, "Restrict to one district")
	return cmd
}
