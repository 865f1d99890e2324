package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/internal/config"
)

func newMigrateCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy every row from one store backend into another",
		Long: `Migrate loads the whole row set from --from and overwrites --to with it.

Example:
  portfolio migrate --from excel --to sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == to {
				return fmt.Errorf("--from and --to are both %q", from)
			}
			src, err := openStore(a.cfg, from, a.logger)
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			defer src.close()
			dst, err := openStore(a.cfg, to, a.logger)
			if err != nil {
				return fmt.Errorf("open target: %w", err)
			}
			defer dst.close()

			set, err := src.store.LoadAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", from, err)
			}
			if err := dst.store.SaveAll(cmd.Context(), set); err != nil {
				return fmt.Errorf("save %s: %w", to, err)
			}
			a.logger.Info("migrated portfolio",
				zap.String("from", from),
				zap.String("to", to),
				zap.Int("rows", set.Len()),
				zap.Int("columns", len(set.Header())),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %d rows from %s to %s\n", set.Len(), from, to)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", config.StoreExcel, "source store (excel|sql)")
	cmd.Flags().StringVar(&to, "to", config.StoreSQL, "target store (excel|sql)")
	return cmd
}
