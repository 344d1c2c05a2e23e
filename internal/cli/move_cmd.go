package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
	"github.com/imtheyoyo/plan-course/internal/domain"
)

func newMoveCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "move <session-id> <day>",
		Short: "Move a session to another day of its week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := resolvePlan(ctx, app, planID)
			if err != nil {
				return err
			}

			day, err := parseWeekday(args[1])
			if err != nil {
				return err
			}

			week, session := findSession(plan, args[0])
			if session == nil {
				return fmt.Errorf("no session %q in plan %s", args[0], plan.ID[:8])
			}
			if err := week.MoveSession(session.ID, day); err != nil {
				return err
			}
			if err := app.Repo.SaveWeek(ctx, plan.ID, week); err != nil {
				return fmt.Errorf("saving week %d: %w", week.Number, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s (week %d)\n",
				session.Type, day, week.Number)
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderWeekDetail(week))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "plan id (default latest)")

	return cmd
}

// findSession locates a session by id or unique id prefix, together with
// the week that owns it.
func findSession(plan *domain.TrainingPlan, id string) (*domain.Week, *domain.Session) {
	for _, w := range plan.Weeks {
		for _, s := range w.Sessions {
			if s.ID == id || strings.HasPrefix(s.ID, id) {
				return w, s
			}
		}
	}
	return nil, nil
}
