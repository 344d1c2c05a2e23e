package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/repository"
)

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan-id>",
		Short: "Delete a stored plan and all its weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Repo.Delete(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no plan with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("deleting plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s\n", args[0])
			return nil
		},
	}
}
