package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Query the running daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: 5 * time.Second}
			url := "http://" + cfg.Server.Bind + "/api/health"
			resp, err := client.Get(url)
			if err != nil {
				return fmt.Errorf("daemon not reachable at %s: %w", cfg.Server.Bind, err)
			}
			defer resp.Body.Close()

			var payload struct {
				Status string `json:"status"`
				Cache  string `json:"cache"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return fmt.Errorf("decode health response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Address", cfg.Server.Bind},
					{"Status", payload.Status},
					{"Cache", payload.Cache},
					{"Healthy", yesNo(resp.StatusCode == http.StatusOK)},
				},
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
