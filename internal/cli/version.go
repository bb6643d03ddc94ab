package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if a.cfg.Output == "json" {
				return json.NewEncoder(out).Encode(map[string]string{
					"version": a.build.Version,
					"commit":  a.build.Commit,
					"date":    a.build.Date,
				})
			}
			_, err := fmt.Fprintf(out, "gen version %s (commit: %s, built: %s)\n",
				a.build.Version, a.build.Commit, a.build.Date)
			return err
		},
	}
}
