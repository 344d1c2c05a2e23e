package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/audit"
	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
)

func newAuditCmd(app *App) *cobra.Command {
	var weekNumber int

	cmd := &cobra.Command{
		Use:   "audit [plan-id]",
		Short: "Check a stored plan against training-load safety rules",
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
				report := audit.AuditWeek(week, plan.Request)
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderAuditReports([]audit.Report{report}))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderAuditReports(audit.AuditPlan(plan)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&weekNumber, "week", "w", 0, "audit a single week")

	return cmd
}
