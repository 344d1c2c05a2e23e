package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/imtheyoyo/plan-course/internal/cli/formatter"
	"github.com/imtheyoyo/plan-course/internal/domain"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		start, race, distance, level, days, longRun string
		weeklyKm                                    float64
		perfDistance                                string
		perfTime                                    string
		sixMinKm                                    float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store a new training plan",
		Example: `  plancourse generate --race 2026-04-25 --distance 10k \
      --days tue,thu,sat,sun --long-run sun --weekly-km 30 \
      --perf-distance 10 --perf-time 41:21`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(start, race, distance, level, days, longRun,
				weeklyKm, perfDistance, perfTime, sixMinKm)
			if err != nil {
				return err
			}

			ctx := context.Background()
			plan, err := app.Plans.Generate(ctx, req)
			if err != nil {
				return err
			}
			if err := app.Repo.Save(ctx, plan); err != nil {
				return fmt.Errorf("saving plan: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPlanSummary(plan))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPaces(plan.Paces))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "plan start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&race, "race", "", "race date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&distance, "distance", "", "race distance: km, 5k, 10k, half, marathon (required)")
	cmd.Flags().StringVar(&level, "level", "intermediate", "runner level: beginner, intermediate, advanced")
	cmd.Flags().StringVar(&days, "days", "", "training days, e.g. tue,thu,sat,sun (required)")
	cmd.Flags().StringVar(&longRun, "long-run", "sun", "long run day")
	cmd.Flags().Float64Var(&weeklyKm, "weekly-km", 0, "current weekly mileage in km (required)")
	cmd.Flags().StringVar(&perfDistance, "perf-distance", "", "reference race distance (km or name)")
	cmd.Flags().StringVar(&perfTime, "perf-time", "", "reference race time, mm:ss or h:mm:ss")
	cmd.Flags().Float64Var(&sixMinKm, "six-min-test", 0, "distance covered in a 6-minute test, km")

	_ = cmd.MarkFlagRequired("race")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("weekly-km")

	return cmd
}

func buildRequest(start, race, distance, level, days, longRun string,
	weeklyKm float64, perfDistance, perfTime string, sixMinKm float64,
) (domain.PlanRequest, error) {
	var req domain.PlanRequest
	var err error

	if start == "" {
		now := time.Now()
		req.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else if req.StartDate, err = parseDate(start); err != nil {
		return req, err
	}
	if req.RaceDate, err = parseDate(race); err != nil {
		return req, err
	}
	if req.RaceDistanceKm, err = parseRaceDistance(distance); err != nil {
		return req, err
	}
	req.Level = domain.Level(level)
	if req.TrainingDays, err = parseWeekdays(days); err != nil {
		return req, err
	}
	if req.LongRunDay, err = parseWeekday(longRun); err != nil {
		return req, err
	}
	req.CurrentWeeklyKm = weeklyKm
	req.SixMinTestKm = sixMinKm

	if perfDistance != "" || perfTime != "" {
		if perfDistance == "" || perfTime == "" {
			return req, fmt.Errorf("--perf-distance and --perf-time must be given together")
		}
		km, err := parseRaceDistance(perfDistance)
		if err != nil {
			return req, err
		}
		d, err := parseRaceTime(perfTime)
		if err != nil {
			return req, err
		}
		req.Performance = &domain.Performance{DistanceKm: km, Duration: d}
	}

	return req, req.Validate()
}
