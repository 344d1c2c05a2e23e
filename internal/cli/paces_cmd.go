package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
)

func newPacesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "paces [plan-id]",
		Short: "Show the pace table of a stored plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(context.Background(), app, planArg(args))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPaces(plan.Paces))
			return nil
		},
	}
}
