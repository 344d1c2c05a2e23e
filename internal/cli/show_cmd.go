package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
	"github.com/imtheyoyo/plan-course/internal/domain"
)

func newShowCmd(app *App) *cobra.Command {
	var weekNumber int

	cmd := &cobra.Command{
		Use:   "show [plan-id]",
		Short: "Show a stored plan (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := resolvePlan(context.Background(), app, planArg(args))
			if err != nil {
				return err
			}

			if weekNumber > 0 {
				week := weekByNumber(plan, weekNumber)
				if week == nil {
					return fmt.Errorf("plan has no week %d", weekNumber)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderWeekDetail(week))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPlanSummary(plan))
			return nil
		},
	}

	cmd.Flags().IntVarP(&weekNumber, "week", "w", 0, "show a single week in detail")

	return cmd
}

func weekByNumber(plan *domain.TrainingPlan, number int) *domain.Week {
	for _, w := range plan.Weeks {
		if w.Number == number {
			return w
		}
	}
	return nil
}
