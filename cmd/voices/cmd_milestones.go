package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silentvoices/internal/content"
)

// milestonesCmd shows the fixed milestone catalog against current
// progress, plus the physiological recovery markers.
var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show recovery milestones and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		soberDays := 0
		if p, ok := a.engine.Profile(); ok {
			soberDays = p.TotalSoberDays
			if p.Role.AccruesSoberDays() {
				fmt.Printf("You are on day %d.\n\n", soberDays)
			}
		}

		for _, m := range content.Milestones {
			mark := " "
			if soberDays >= m.Day {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s day %d — %s\n", mark, m.Icon, m.Day, m.Title)
			fmt.Printf("        %s\n", m.Reward)
		}

		fmt.Println("\nWhat your body is doing:")
		for _, h := range content.HealthMilestones {
			mark := " "
			if soberDays >= h.Days {
				mark = "✓"
			}
			fmt.Printf("  [%s] day %d: %s\n", mark, h.Days, h.Label)
		}
		return nil
	},
}
