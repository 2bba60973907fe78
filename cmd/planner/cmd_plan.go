package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rahullath/dayplanner/chain"
	"github.com/rahullath/dayplanner/internal/obslog"
	"github.com/rahullath/dayplanner/planmodel"
	"github.com/rahullath/dayplanner/planner"
	"github.com/rahullath/dayplanner/ports"
)

var planCmd = &cobra.Command{
	Use:   "plan <fixture.json>",
	Short: "Run one planning invocation against a fixture and print the Day Plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	f, err := loadFixture(args[0])
	if err != nil {
		return err
	}
	input, err := f.toPlannerInput()
	if err != nil {
		return fmt.Errorf("fixture %s: %w", args[0], err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	clock, err := f.clock()
	if err != nil {
		return fmt.Errorf("fixture %s: %w", args[0], err)
	}
	if clock == nil {
		clock = ports.FixedClock{At: input.PlanStart}
	}

	traceID := obslog.NewTraceID()
	invocationLogger := obslog.WithTrace(logger, traceID, input.UserID, f.Date)

	p := planner.Planner{
		Config:   cfg,
		Calendar: f.calendarSource(),
		Travel:   f.travelEstimator(),
		Clock:    clock,
		Logger:   invocationLogger,
	}

	plan, planErr := p.Plan(context.Background(), input)
	if planErr != nil {
		invocationLogger.Error("planning invocation failed", zap.String("kind", string(planErr.Kind)), zap.String("location", planErr.Location), zap.String("detail", planErr.Detail))
		return planErr
	}

	printPlan(plan)
	return nil
}

func printPlan(plan planmodel.DayPlan) {
	fmt.Println("Day Plan")
	fmt.Println("========")
	for _, b := range plan.Blocks {
		status := string(b.Status)
		if b.Status == planmodel.StatusSkipped {
			status = fmt.Sprintf("%s (%s)", status, b.SkipReason)
		}
		fmt.Printf("%-28s  %-10s  %-20s  %s\n", b.Period.String(), string(b.Kind), b.Label, status)
	}

	if len(plan.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings")
		fmt.Println("--------")
		for _, w := range plan.Warnings {
			fmt.Printf("%s: chain=%s meal=%s detail=%s\n", w.Kind, w.ChainID, w.MealKind, w.Detail)
		}
	}

	fmt.Println()
	fmt.Println("Chains")
	fmt.Println("------")
	for _, c := range plan.Chains {
		fmt.Printf("%s (%s) status=%s conflict=%v overrun=%v\n", c.ChainID, c.Anchor.Title, c.Status, c.EnvelopeConflict, c.OverrunBeforePlanStart)
	}

	if pairs := chain.ConflictPairs(plan.Chains); len(pairs) > 0 {
		fmt.Println()
		fmt.Println("Conflicting chain pairs")
		fmt.Println("-----------------------")
		for _, p := range pairs {
			fmt.Printf("%s <-> %s\n", p.A, p.B)
		}
	}
}
