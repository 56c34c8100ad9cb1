package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "View and tick off your daily routine",
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the routine checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, item := range a.engine.Routine() {
			mark := " "
			if item.Completed {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s. %s (%s)\n", mark, item.ID, item.Name, item.Category)
		}
		done, total := a.engine.RoutineCompletion()
		fmt.Printf("\n%d of %d complete\n", done, total)
		return nil
	},
}

// routineToggleCmd flips one item. Unknown ids are a silent no-op, the
// same contract the engine gives the dashboard.
var routineToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Toggle a routine item by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.engine.ToggleRoutine(args[0])
		done, total := a.engine.RoutineCompletion()
		fmt.Printf("%d of %d complete\n", done, total)
		return nil
	},
}

func init() {
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineToggleCmd)
}
