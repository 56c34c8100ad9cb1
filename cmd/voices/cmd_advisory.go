package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Advisory commands. Each call is best-effort: failures come back as
// the deterministic local fallback, never as a command error.

// insightCmd analyzes recent history for patterns.
var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Ask the companion to spot patterns in your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.AdvisoryTimeout())
		defer cancel()

		res := a.advisor.AnalyzePatterns(ctx, a.engine.CheckIns(), a.engine.Journals())
		fmt.Println(res.Insight)
		if res.Action != "" {
			fmt.Printf("\nTry this: %s\n", res.Action)
		}
		return nil
	},
}

// affirmCmd prints an affirmation for the user's role.
var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Receive an affirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, ok := a.engine.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: voices init --role <role> <name>")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.AdvisoryTimeout())
		defer cancel()

		fmt.Println(a.advisor.GenerateAffirmation(ctx, p.Role))
		return nil
	},
}

// guideCmd asks a free-form question.
var guideCmd = &cobra.Command{
	Use:   "guide [query]",
	Short: "Ask the companion for deeper guidance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, ok := a.engine.Profile()
		if !ok {
			return fmt.Errorf("no profile yet; run: voices init --role <role> <name>")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.AdvisoryTimeout())
		defer cancel()

		fmt.Println(a.advisor.GetGuidance(ctx, strings.Join(args, " "), p.Role))
		return nil
	},
}

// searchCmd runs a search-grounded support query.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for support resources",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.AdvisoryTimeout())
		defer cancel()

		res := a.advisor.SearchSupport(ctx, strings.Join(args, " "))
		fmt.Println(res.Text)
		if len(res.Sources) > 0 {
			fmt.Println("\nSources:")
			for _, s := range res.Sources {
				fmt.Printf("  %s\n", s)
			}
		}
		return nil
	},
}
