package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/gen/cargo"
)

func (a *app) newTargetDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target-dir [elem...]",
		Short: "Print the cargo target directory",
		Long: `Runs cargo metadata and prints the target_directory it reports.
Extra arguments are joined onto the directory, e.g.

  gen target-dir cxxbridge include`,
		RunE: func(cmd *cobra.Command, args []string) error {
			locator := cargo.NewLocator(
				cargo.WithExecutor(a.executor),
				cargo.WithExecutable(a.cfg.Cargo),
				cargo.WithDir(a.cfg.Workspace),
				cargo.WithLogger(a.logger),
			)

			dir, err := locator.TargetDir(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, "target_dir", dir.Join(args...))
		},
	}
}
