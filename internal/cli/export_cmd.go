package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/exchange"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [plan-id]",
		Short: "Export a stored plan to a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(context.Background(), app, planArg(args))
			if err != nil {
				return err
			}

			doc := exchange.Export(plan)
			if err := exchange.SaveDocument(out, doc); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported plan %s to %s\n", plan.ID[:8], out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "plan.json", "output file path")

	return cmd
}
