package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
)

func newSwapCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "swap <session-id> <session-id>",
		Short: "Swap the days of two sessions in the same week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := resolvePlan(ctx, app, planID)
			if err != nil {
				return err
			}

			week, a := findSession(plan, args[0])
			if a == nil {
				return fmt.Errorf("no session %q in plan %s", args[0], plan.ID[:8])
			}
			otherWeek, b := findSession(plan, args[1])
			if b == nil {
				return fmt.Errorf("no session %q in plan %s", args[1], plan.ID[:8])
			}
			if otherWeek != week {
				return fmt.Errorf("sessions belong to weeks %d and %d, swap works within one week",
					week.Number, otherWeek.Number)
			}

			if err := week.SwapSessions(a.ID, b.ID); err != nil {
				return err
			}
			if err := app.Repo.SaveWeek(ctx, plan.ID, week); err != nil {
				return fmt.Errorf("saving week %d: %w", week.Number, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Swapped %s and %s (week %d)\n",
				a.Type, b.Type, week.Number)
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderWeekDetail(week))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id (default latest)")

	return cmd
}
