package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
	"github.com/imtheyoyo/plan-course/internal/exchange"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a plan from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := exchange.LoadDocument(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			if errs := exchange.ValidateDocument(doc); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("  - ")+e.Error())
				}
				return errors.New("document failed validation")
			}

			plan, err := exchange.Import(doc)
			if err != nil {
				return fmt.Errorf("importing document: %w", err)
			}
			if err := app.Repo.Save(context.Background(), plan); err != nil {
				return fmt.Errorf("saving plan: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported plan %s (%d weeks)\n", plan.ID[:8], len(plan.Weeks))
			return nil
		},
	}
}
