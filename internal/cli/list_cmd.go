package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Repo.List(context.Background())
			if err != nil {
				return fmt.Errorf("listing plans: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No stored plans. Run \"plancourse generate\" to create one."))
				return nil
			}

			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.ID[:8],
					formatter.RaceLabel(s.RaceDistanceKm),
					s.RaceDate.Format("2006-01-02"),
					string(s.Level),
					strconv.Itoa(s.WeekCount),
					s.CreatedAt.Format("2006-01-02"),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "RACE", "DATE", "LEVEL", "WEEKS", "CREATED"}, rows))
			return nil
		},
	}
}
