package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silentvoices/internal/types"
)

// statusCmd shows or sets the traffic-light status. Setting red raises
// the standby-support notification.
var statusCmd = &cobra.Command{
	Use:   "status [green|amber|red]",
	Short: "Show or set your traffic-light status",
	Args:  cobra.MaximumNArgs(1),
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

		if len(args) == 0 {
			fmt.Printf("Status: %s  Risk: %s\n", p.CurrentStatus, p.RiskLevel)
			return nil
		}

		s, err := types.ParseStatus(args[0])
		if err != nil {
			return err
		}
		a.engine.SetStatus(s)
		fmt.Printf("Status set to %s.\n", s)
		a.printNotification()
		return nil
	},
}
