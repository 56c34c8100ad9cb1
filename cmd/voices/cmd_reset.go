package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

// resetCmd erases the whole journey. The profile, both ledgers, and the
// routine checklist are deleted; the routine reseeds from the default
// catalog.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase your journey and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("this erases your profile, check-ins, journal, and routine; re-run with --force to confirm")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.engine.Reset(); err != nil {
			return err
		}
		fmt.Println("Journey erased. Start again with: voices init --role <role> <name>")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm erasing all data")
}
