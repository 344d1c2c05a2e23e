// Package cli wires the cobra command tree for the plancourse binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/repository"
	"github.com/imtheyoyo/plan-course/internal/service"
)

// App holds the services and repositories the CLI commands run against.
type App struct {
	Plans  service.PlanService
	Repo   repository.PlanRepo
	Config domain.Config
}

// NewRootCmd creates the top-level "plancourse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "plancourse",
		Short:         "Race training plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newPacesCmd(app),
		newAuditCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newMoveCmd(app),
		newSwapCmd(app),
		newRemoveCmd(app),
	)

	return root
}

// resolvePlan loads a plan by id, or the most recent one when the id is
// empty or "latest".
func resolvePlan(ctx context.Context, app *App, id string) (*domain.TrainingPlan, error) {
	if id == "" || id == "latest" {
		plan, err := app.Repo.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading latest plan: %w", err)
		}
		return plan, nil
	}
	plan, err := app.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading plan %q: %w", id, err)
	}
	return plan, nil
}

func planArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
